package user

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleAdmin
}

// ContactInfo holds the contact details a member chooses to share with the camp.
type ContactInfo struct {
	Email *string `firestore:"email,omitempty" json:"email,omitempty"`
	Phone *string `firestore:"phone,omitempty" json:"phone,omitempty"`
}

// User is a registered camp member. Tent number is set only by administrators
// and is kept independently of the camp-map spot assignment.
type User struct {
	UID           string      `firestore:"uid" json:"uid"`
	Email         string      `firestore:"email" json:"email"`
	Role          Role        `firestore:"role" json:"role"`
	DisplayName   string      `firestore:"displayName" json:"displayName"`
	PhotoURL      *string     `firestore:"photoUrl" json:"photoUrl"`
	PlayaName     *string     `firestore:"playaName" json:"playaName"`
	Bio           *string     `firestore:"bio" json:"bio"`
	Skills        []string    `firestore:"skills" json:"skills"`
	ContactInfo   ContactInfo `firestore:"contactInfo" json:"contactInfo"`
	YearsAttended []int       `firestore:"yearsAttended" json:"yearsAttended"`
	TentNumber    *int        `firestore:"tentNumber" json:"tentNumber"`
	CreatedAt     time.Time   `firestore:"createdAt" json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate is a patch of the member-editable profile fields. Nil fields
// are left untouched.
type ProfileUpdate struct {
	DisplayName   *string   `structs:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL      *string   `structs:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	PlayaName     *string   `structs:"playaName,omitempty" json:"playaName,omitempty"`
	Bio           *string   `structs:"bio,omitempty" json:"bio,omitempty"`
	Skills        *[]string `structs:"skills,omitempty" json:"skills,omitempty"`
	ContactEmail  *string   `structs:"contactInfo.email,omitempty" json:"contactEmail,omitempty"`
	ContactPhone  *string   `structs:"contactInfo.phone,omitempty" json:"contactPhone,omitempty"`
	YearsAttended *[]int    `structs:"yearsAttended,omitempty" json:"yearsAttended,omitempty"`
}
