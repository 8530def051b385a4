package member

import (
	"time"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/model"
)

type SignupRequest struct {
	Username        string `json:"username" binding:"required,alphanum,min=4,max=20"`
	Password        string `json:"password" binding:"required,min=8,max=15"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone1          string `json:"phone1" binding:"omitempty,phone_segment"`
	Phone2          string `json:"phone2" binding:"omitempty,phone_segment"`
	Phone3          string `json:"phone3" binding:"omitempty,phone_segment"`
	Zipcode         string `json:"zipcode" binding:"max=10"`
	Address         string `json:"address" binding:"max=255"`
	DetailAddress   string `json:"detailAddress" binding:"max=255"`
}

func (r *SignupRequest) profile() model.Profile {
	return model.Profile{
		Name:          r.Name,
		Email:         r.Email,
		PhoneNumber:   model.ComposePhoneNumber(r.Phone1, r.Phone2, r.Phone3),
		Zipcode:       r.Zipcode,
		Address:       r.Address,
		DetailAddress: r.DetailAddress,
	}
}

// UpdateProfileRequest replaces the whole profile. An empty Password keeps the current one.
type UpdateProfileRequest struct {
	Password        string `json:"password" binding:"omitempty,min=8,max=15"`
	PasswordConfirm string `json:"passwordConfirm"`
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone1          string `json:"phone1" binding:"omitempty,phone_segment"`
	Phone2          string `json:"phone2" binding:"omitempty,phone_segment"`
	Phone3          string `json:"phone3" binding:"omitempty,phone_segment"`
	Zipcode         string `json:"zipcode" binding:"max=10"`
	Address         string `json:"address" binding:"max=255"`
	DetailAddress   string `json:"detailAddress" binding:"max=255"`
}

func (r *UpdateProfileRequest) profile() model.Profile {
	return model.Profile{
		Name:          r.Name,
		Email:         r.Email,
		PhoneNumber:   model.ComposePhoneNumber(r.Phone1, r.Phone2, r.Phone3),
		Zipcode:       r.Zipcode,
		Address:       r.Address,
		DetailAddress: r.DetailAddress,
	}
}

type SignupResponse struct {
	ID uint32 `json:"id"`
}

type CheckUsernameQuery struct {
	Username string `form:"username" binding:"required"`
}

type CheckEmailQuery struct {
	Email string `form:"email" binding:"required"`
}

type DuplicateCheckResponse struct {
	Duplicate bool `json:"duplicate"`
}

type ListMembersQuery struct {
	Page int `form:"page"`
}

// ProfileResponse is the profile form view. Phone segments are empty
// when the stored number cannot be split.
type ProfileResponse struct {
	ID            uint32 `json:"id"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Phone1        string `json:"phone1"`
	Phone2        string `json:"phone2"`
	Phone3        string `json:"phone3"`
	Zipcode       string `json:"zipcode"`
	Address       string `json:"address"`
	DetailAddress string `json:"detailAddress"`
}

func newProfileResponse(m *model.Member) *ProfileResponse {
	phone1, phone2, phone3, _ := model.SplitPhoneNumber(m.PhoneNumber)

	return &ProfileResponse{
		ID:            m.ID,
		Username:      m.Username,
		Name:          m.Name,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		Phone1:        phone1,
		Phone2:        phone2,
		Phone3:        phone3,
		Zipcode:       m.Zipcode,
		Address:       m.Address,
		DetailAddress: m.DetailAddress,
	}
}

type MemberSummary struct {
	ID          uint32    `json:"id"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newMemberSummary(m model.Member) MemberSummary {
	return MemberSummary{
		ID:          m.ID,
		Username:    m.Username,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}
