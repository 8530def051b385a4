package model

// Member represents a registered account in the system
type Member struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Username      string `gorm:"column:username;type:VARCHAR2(50);not null;uniqueIndex:idx_member_username"` // 아이디 (unique, 변경 불가)
	Password      string `gorm:"column:password;type:VARCHAR2(60);not null"`                                  // 암호화된 비밀번호
	Name          string `gorm:"column:name;type:VARCHAR2(100);not null"`                                     // 이름
	Email         string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email"`       // 이메일 (unique)
	PhoneNumber   string `gorm:"column:phone_number;type:VARCHAR2(100)"`                                      // 핸드폰 번호
	Zipcode       string `gorm:"column:zipcode;type:VARCHAR2(10)"`                                            // 우편번호
	Address       string `gorm:"column:address;type:VARCHAR2(255)"`                                           // 주소
	DetailAddress string `gorm:"column:detail_address;type:VARCHAR2(255)"`                                    // 상세 주소

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// Profile holds the mutable profile fields of a Member.
type Profile struct {
	Name          string
	Email         string
	PhoneNumber   string
	Zipcode       string
	Address       string
	DetailAddress string
}

// NewMember creates a new Member. passwordHash must already be hashed.
func NewMember(username, passwordHash string, profile Profile) *Member {
	m := &Member{
		Username: username,
		Password: passwordHash,
	}
	m.ApplyProfile(profile)
	return m
}

// ApplyProfile overwrites every profile field, empty values included.
func (m *Member) ApplyProfile(profile Profile) {
	m.Name = profile.Name
	m.Email = profile.Email
	m.PhoneNumber = profile.PhoneNumber
	m.Zipcode = profile.Zipcode
	m.Address = profile.Address
	m.DetailAddress = profile.DetailAddress
}
