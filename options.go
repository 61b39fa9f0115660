package ormtx

import "fmt"

// IsolationLevel defines the database transaction isolation level.
type IsolationLevel int

// Transaction isolation levels from lowest to highest isolation.
const (
	LevelDefault    IsolationLevel = 0 // Default is RepeatableRead
	ReadUncommitted IsolationLevel = 1 // Lowest isolation level
	ReadCommitted   IsolationLevel = 2 // Prevents dirty reads
	RepeatableRead  IsolationLevel = 3 // Prevents non-repeatable reads
	Serializable    IsolationLevel = 4 // Highest isolation level
)

// String returns the SQL spelling of the isolation level.
func (l IsolationLevel) String() string {
	switch l {
	case ReadUncommitted:
		return "READ UNCOMMITTED"
	case ReadCommitted:
		return "READ COMMITTED"
	case LevelDefault, RepeatableRead:
		return "REPEATABLE READ"
	case Serializable:
		return "SERIALIZABLE"
	default:
		return fmt.Sprintf("IsolationLevel(%d)", int(l))
	}
}

// Valid returns true if the level is one of the four standard levels
// or LevelDefault.
func (l IsolationLevel) Valid() bool {
	return l >= LevelDefault && l <= Serializable
}

// ParseIsolationLevel converts the SQL spelling of an isolation level
// into an IsolationLevel.
func ParseIsolationLevel(s string) (IsolationLevel, error) {
	switch s {
	case "READ UNCOMMITTED":
		return ReadUncommitted, nil
	case "READ COMMITTED":
		return ReadCommitted, nil
	case "REPEATABLE READ":
		return RepeatableRead, nil
	case "SERIALIZABLE":
		return Serializable, nil
	default:
		return LevelDefault, &ConfigurationError{Reason: fmt.Sprintf("unknown isolation level %q", s)}
	}
}

// LockMode is a row-locking hint applied per read query by callers
// referencing a transaction. It is not stored by the Transaction itself.
type LockMode int

// Row-locking modes.
const (
	LockUpdate LockMode = 1 // SELECT ... FOR UPDATE
	LockShare  LockMode = 2 // SELECT ... FOR SHARE
)

// Clause returns the SQL locking clause for the mode.
func (m LockMode) Clause() string {
	switch m {
	case LockUpdate:
		return "FOR UPDATE"
	case LockShare:
		return "FOR SHARE"
	default:
		panic("unknown lock mode")
	}
}

// Config holds the resolved per-transaction options.
type Config struct {
	// Autocommit defines whether autocommit is enabled for the session
	// backing the transaction.
	Autocommit bool
	// IsolationLevel is applied once during environment preparation and
	// cannot be changed mid-transaction.
	IsolationLevel IsolationLevel
	// Settings holds options not interpreted by this package. They are
	// preserved as-is for dialect hooks and callers.
	Settings map[string]any
}

// DefaultConfig returns the transaction defaults.
func DefaultConfig() Config {
	return Config{
		Autocommit:     true,
		IsolationLevel: RepeatableRead,
		Settings:       nil,
	}
}

// TxOption overrides a single transaction configuration field.
// Options are merged onto DefaultConfig, not replacing it.
type TxOption func(*Config)

// WithAutocommit sets the autocommit mode.
func WithAutocommit(on bool) TxOption {
	return func(c *Config) {
		c.Autocommit = on
	}
}

// WithIsolationLevel sets the transaction isolation level.
func WithIsolationLevel(level IsolationLevel) TxOption {
	return func(c *Config) {
		c.IsolationLevel = level
	}
}

// WithSetting stores an uninterpreted key/value pair in the configuration.
func WithSetting(key string, value any) TxOption {
	return func(c *Config) {
		if c.Settings == nil {
			c.Settings = make(map[string]any, 1)
		}
		c.Settings[key] = value
	}
}
