package kem

// NameHybrid is the configuration name of Hybrid.
const NameHybrid = "hybrid"

// primeModulus reduces combined leg bytes.
const primeModulus = 257

// hybridLegs label the independent derivations combined by Hybrid.
var hybridLegs = [...]string{"kyber", "ntru", "frodo"} //nolint:gochecknoglobals

// Hybrid combines three independently labelled derivations byte by byte and feeds the
// combined secret back through the keyed hash, keeping HybridSharedSecretSize bytes.
type Hybrid struct {
	Policy Policy
}

// Name implements Strategy.
func (Hybrid) Name() string {
	return NameHybrid
}

// Encapsulate implements Strategy.
func (Hybrid) Encapsulate(seed []byte) (Encapsulation, error) {
	if len(seed) == 0 {
		return Encapsulation{}, ErrEmptySeed
	}

	publicValue := make([]byte, PublicValueSize)
	combined := make([]byte, SharedSecretSize)

	for _, leg := range hybridLegs {
		pub := derive(seed, leg+"-"+ContextPublic)
		shared := derive(seed, leg+"-"+ContextShared)

		for i := range publicValue {
			publicValue[i] ^= pub[i]
		}

		for i := range combined {
			combined[i] ^= shared[i]
		}
	}

	reduce(publicValue)
	reduce(combined)

	return Encapsulation{
		PublicValue:  publicValue,
		SharedSecret: derive(combined, "")[:HybridSharedSecretSize],
	}, nil
}

// Decapsulate implements Strategy.
func (h Hybrid) Decapsulate(seed, publicValue []byte) ([]byte, error) {
	return decapsulate(h, h.Policy, seed, publicValue)
}

// reduce maps every byte through gMod in place.
func reduce(buf []byte) {
	for i, b := range buf {
		buf[i] = byte(gMod(int(b), primeModulus))
	}
}

// gMod is the perturbed modular reduction (a + (a xor m) mod 11) mod m.
// For byte inputs and m = 257 the result always fits in a byte.
func gMod(a, m int) int {
	return (a + (a^m)%11) % m
}
