package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velleta/heritage/app/models"
)

var garmentTypes = []string{
	"Lehenga", "Saree", "Anarkali", "Sharara", "Gown", "Salwar Suit",
}

var garmentColors = []string{
	"Maroon", "Gold", "Ivory", "Emerald", "Navy", "Rose Pink", "Wine", "Peach",
}

// ProductFaker builds one catalog entry. seq keeps design numbers
// unique and stable across a seeding run.
func ProductFaker(seq int) *models.Product {
	rate := decimal.NewFromInt(int64(5000 + rand.Intn(45)*1000))

	return &models.Product{
		DesignNo:       fmt.Sprintf("DES%03d", seq),
		TypeOfGarment:  garmentTypes[rand.Intn(len(garmentTypes))],
		ColorOfGarment: garmentColors[rand.Intn(len(garmentColors))],
		BlouseColor:    garmentColors[rand.Intn(len(garmentColors))],
		DupattaColor:   garmentColors[rand.Intn(len(garmentColors))],
		Rate:           rate,
		FixCode:        rand.Intn(10),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}
