package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or open
// transaction) is stored in the gin context by the DB middleware.
const DBContextKey = contextKey("db")
