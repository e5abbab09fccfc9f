package classify

import "fmt"

// ProducerID addresses a formula or secondary module within one
// configuration, e.g. "formula.tilt_adjust" or "secondary.wind_obos".
type ProducerID string

// ConsumerID addresses anything that reads variables: a producer or the
// primary module, e.g. "primary.pvwattsv8".
type ConsumerID string

// FormulaID returns the producer id of a formula.
func FormulaID(name string) ProducerID {
	return ProducerID(fmt.Sprintf("formula.%s", name))
}

// SecondaryID returns the producer id of a secondary module spec.
func SecondaryID(name string) ProducerID {
	return ProducerID(fmt.Sprintf("secondary.%s", name))
}

// PrimaryID returns the consumer id of the primary compute module.
func PrimaryID(moduleID string) ConsumerID {
	return ConsumerID(fmt.Sprintf("primary.%s", moduleID))
}
