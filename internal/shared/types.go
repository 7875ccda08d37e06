package shared

const (
	// Asynq task types
	TypeImportRemoteBook = "catalog:import_remote_book"
)

// Role constants
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
