package fakers

import (
	"log"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"

	"github.com/velleta/heritage/app/models"
)

// UserFaker builds a demo account with the given password, or a faked
// user name and password when none is given.
func UserFaker(userName, password string) *models.User {
	if userName == "" {
		userName = slug.Make(faker.Username())
	}
	if password == "" {
		password = faker.Password()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash faker password:", err)
	}

	return &models.User{
		UserName: userName,
		Password: string(hashed),
	}
}
