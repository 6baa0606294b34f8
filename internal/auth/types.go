package auth

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Output is the collaborator's answer. Token is opaque and may be empty
// after a registration.
type Output struct {
	Token   string
	Message string
}
