package solana

// Rent parameters matching the cluster defaults.
//
// Reference: https://github.com/solana-labs/solana/blob/master/sdk/program/src/rent.rs
const (
	defaultLamportsPerByteYear = 3480
	defaultExemptionThreshold  = 2.0
	accountStorageOverhead     = 128
)

// Rent models the platform rent schedule. The zero value is not usable; use
// DefaultRent.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionThreshold  float64
}

// DefaultRent returns the rent schedule with cluster default parameters.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionThreshold:  defaultExemptionThreshold,
	}
}

// MinimumBalance returns the minimum lamport balance for an account of the
// given data size to be exempt from rent collection.
func (r Rent) MinimumBalance(dataSize uint64) uint64 {
	return uint64(float64((accountStorageOverhead+dataSize)*r.LamportsPerByteYear) * r.ExemptionThreshold)
}
