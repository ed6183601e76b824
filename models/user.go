package models

// User is the only persisted entity of the service: one row of the "users"
// table.
//
// ID is assigned by the storage engine on insert and never changes
// afterwards. None of the other fields carry format or uniqueness
// constraints; Password is stored exactly as received.
type User struct {
	// ID is the primary key of the row.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the contact address of the user. Not unique.
	Email string `json:"email"`

	// Password is kept as plain text.
	Password string `json:"password"`

	// CPF is the Brazilian taxpayer number. No checksum is verified.
	CPF string `json:"cpf"`

	// Number is a free-form phone number.
	Number string `json:"number"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFields carries the five writable fields of a [User], each as an
// optional slot. A nil slot means the field was not supplied by the caller.
//
// On create every slot must be set. On update only the set slots overwrite
// the stored values (merge-patch), see [User.Apply].
type UserFields struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	CPF      *string `json:"cpf,omitempty"`
	Number   *string `json:"number,omitempty"`
}

// IsEmpty reports whether no slot is set.
func (f UserFields) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.Password == nil && f.CPF == nil && f.Number == nil
}

// ToUser converts fully populated fields into a [User] without ID.
// Unset slots become empty strings; callers validate presence first.
func (f UserFields) ToUser() User {
	return User{}.Apply(f)
}

// Apply returns a copy of u with every set slot of patch written over the
// corresponding field. ID is never changed.
func (u User) Apply(patch UserFields) User {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.CPF != nil {
		u.CPF = *patch.CPF
	}
	if patch.Number != nil {
		u.Number = *patch.Number
	}

	return u
}

// UserUpdate is a partial update of the user identified by ID.
type UserUpdate struct {
	ID     int64
	Fields UserFields
}
