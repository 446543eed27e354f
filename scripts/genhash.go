// One-off: go run scripts/genhash.go <username> <password>
// Prints an INSERT for seeding the users table with a bcrypt hash.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username, password := "admin", "admin"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		panic(err)
	}
	fmt.Printf("INSERT INTO users (username, password_hash) VALUES ('%s', '%s');\n", username, string(h))
}
