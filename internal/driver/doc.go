// Package driver wires the pipeline stages (load, tokenize, parse, format)
// into the operations the CLI exposes. It owns file collection, parallelism
// and the on-disk canonical-verdict cache; the stages themselves stay pure.
package driver
