package domain

// Config holds the user identity used as the actor for logged changes.
// Defaulting these fields from the host environment is a collaborator
// concern, not part of this package.
type Config struct {
	Name  string
	Email string
}

// User formats the identity as "Name <email>", the default actor string
// for logged actions.
func (c Config) User() string {
	return c.Name + " <" + c.Email + ">"
}
