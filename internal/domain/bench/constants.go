package bench

import "fmt"

// AlgorithmRSA represents the RSA algorithm name as emitted in reports
const AlgorithmRSA = "RSA"

// OperationOAEPEncrypt represents RSA-OAEP encryption with the public key
const OperationOAEPEncrypt = "oaep-encrypt"

// OperationOAEPDecrypt represents RSA-OAEP decryption with the private key
const OperationOAEPDecrypt = "oaep-decrypt"

// OperationPSSSign represents RSA-PSS signing with the private key
const OperationPSSSign = "pss-sign"

// OperationPSSVerify represents RSA-PSS signature verification with the public key
const OperationPSSVerify = "pss-verify"

// MicrosecondsPerSecond is the scale of all elapsed-time values in measurements
const MicrosecondsPerSecond = 1000000

// Operations returns the benchmarked operations in report order.
func Operations() []string {
	return []string{
		OperationOAEPEncrypt,
		OperationOAEPDecrypt,
		OperationPSSSign,
		OperationPSSVerify,
	}
}

// SupportedKeySizes returns the RSA key sizes the benchmark covers, in run order.
func SupportedKeySizes() []int {
	return []int{2048, 3072, 4096}
}

// KeySizeSupported reports whether the benchmark covers the given RSA key size.
func KeySizeSupported(bits int) bool {
	return bits == 2048 || bits == 3072 || bits == 4096
}

// PrivateKeyFileName returns the conventional private key file name for a key size.
func PrivateKeyFileName(bits int) string {
	return fmt.Sprintf("rsa-%d-prv.pem", bits)
}

// PublicKeyFileName returns the conventional public key file name for a key size.
func PublicKeyFileName(bits int) string {
	return fmt.Sprintf("rsa-%d-pub.pem", bits)
}
