package model

import "time"

type RentalRequest struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	StudentID  string    `json:"studentId"`
	Phone      string    `json:"phone"`
	RentalDate string    `json:"rentalDate"`
	ReturnDate string    `json:"returnDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateRentalRequest carries a rental submission. Rental and return dates are
// plain YYYY-MM-DD strings; their ordering is not checked.
type CreateRentalRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	StudentID  string `json:"studentId" validate:"required"`
	Phone      string `json:"phone" validate:"required,krmobile"`
	RentalDate string `json:"rentalDate" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required"`
}

type AdvertiserApplication struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	Representative string    `json:"representative"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateAdvertiserRequest struct {
	CompanyName    string `json:"companyName" validate:"required"`
	Representative string `json:"representative" validate:"required"`
	Phone          string `json:"phone" validate:"required,krmobile"`
	Email          string `json:"email" validate:"required,email"`
}

type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}
