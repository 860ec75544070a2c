package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword genera el hash bcrypt de la contraseña en texto plano.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarPassword compara el hash bcrypt con la contraseña en texto plano.
func VerificarPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
