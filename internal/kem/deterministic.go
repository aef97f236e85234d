package kem

// NameDeterministic is the configuration name of Deterministic.
const NameDeterministic = "deterministic"

// Deterministic derives the public value and shared secret directly from the seed.
type Deterministic struct {
	Policy Policy
}

// Name implements Strategy.
func (Deterministic) Name() string {
	return NameDeterministic
}

// Encapsulate implements Strategy.
func (Deterministic) Encapsulate(seed []byte) (Encapsulation, error) {
	if len(seed) == 0 {
		return Encapsulation{}, ErrEmptySeed
	}

	return Encapsulation{
		PublicValue:  derive(seed, ContextPublic)[:PublicValueSize],
		SharedSecret: derive(seed, ContextShared),
	}, nil
}

// Decapsulate implements Strategy.
func (d Deterministic) Decapsulate(seed, publicValue []byte) ([]byte, error) {
	return decapsulate(d, d.Policy, seed, publicValue)
}
