package models

const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is a read-only view of the gateway-owned users collection. The service
// never writes it; it is consulted for grade scoping and parent-student
// linking.
type User struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Email     string `bson:"email" json:"email"`
	Name      string `bson:"name" json:"name"`
	Role      string `bson:"role" json:"role"`
	Grade     int    `bson:"grade,omitempty" json:"grade,omitempty"`
	StudentID string `bson:"student_id,omitempty" json:"student_id,omitempty"`
}
