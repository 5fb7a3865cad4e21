// Package bench defines the benchmark domain model: the measured operations,
// the supported key sizes, the report format and the contracts implemented by
// the infrastructure layer.
package bench
