package models

type Admin struct {
	Username       string `json:"username" bson:"username"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	Role           string `json:"role" bson:"role"`
}

type AdminRole string

const RoleAdmin AdminRole = "admin"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
