package role

import "strings"

const (
	Student = "student"
	Doctor  = "doctor"
	Admin   = "admin"
)

// The single recognized admin identity. Admin accounts are never created
// through signup; they are only matched against this allow-list.
const (
	AdminEmail    = "admin@gmail.com"
	AdminPassword = "admin@888"
	AdminName     = "Administrator"
)

/*
* Re-derive the effective role from a claimed role and an email.
* Admin requires both the claim and the exact allow-listed email, so a
* stored record claiming admin for any other email degrades to student.
* Called at every trust boundary: login, signup and session restore.
 */
func Derive(rawRole, email string) string {
	if rawRole == "" {
		rawRole = Student
	}
	switch {
	case strings.EqualFold(rawRole, Admin) && email == AdminEmail:
		return Admin
	case strings.EqualFold(rawRole, Doctor):
		return Doctor
	default:
		return Student
	}
}
