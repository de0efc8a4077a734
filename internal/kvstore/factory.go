package kvstore

import "fmt"

// Driver identifies a KV backend.
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// Open selects a KV implementation by driver name. An empty driver means
// bolt. The path is ignored by the memory driver.
func Open(driver Driver, path string) (KV, error) {
	switch driver {
	case DriverBolt, "":
		return OpenBolt(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown kvstore driver %q", driver)
	}
}
