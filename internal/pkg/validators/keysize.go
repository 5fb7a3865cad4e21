package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeValidation validates that a key size field holds one of the RSA
// key sizes the benchmark covers.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == 2048 || keySize == 3072 || keySize == 4096
}
