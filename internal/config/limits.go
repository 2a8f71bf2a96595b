package config

const (
	// MaxProjectNameLength is the maximum length for project names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxProjectNameLength = 255

	// MaxFolderNameLength is the maximum length for folder names.
	MaxFolderNameLength = 255

	// MaxFileNameLength is the maximum length for file names.
	// Same as folder names for consistency.
	MaxFileNameLength = 255

	// MaxDescriptionLength is the maximum length for version descriptions.
	MaxDescriptionLength = 2000

	// MaxCommentLength is the maximum length for annotation comments.
	MaxCommentLength = 5000

	// MaxFolderDepth caps how deep a parent-chain walk may go before the
	// hierarchy is treated as corrupt. A chain longer than this cannot
	// occur in a well-formed project; hitting the cap means a cycle
	// slipped past the reparent guard.
	MaxFolderDepth = 1000
)
