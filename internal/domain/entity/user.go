package entity

// User cuenta de comprador. Se crea en el registro y nunca se modifica.
type User struct {
	ID       int64
	Name     string
	Email    string // único, clave de login
	Password string // valor opaco: texto plano o hash bcrypt según AUTH_PASSWORD_MODE
}
