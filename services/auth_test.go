package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MindHub360/models"
	"MindHub360/role"
	"MindHub360/store"
)

func newAuth() (*AuthService, *store.MemStore) {
	st := store.NewMemStore()
	return &AuthService{Store: st}, st
}

func TestSignup_Student(t *testing.T) {
	auth, st := newAuth()

	sess, err := auth.Signup(SignupInput{
		Name: "Alice", Email: "alice@uni.edu", Password: "pw",
		Phone: "12345", Role: "student", StudentID: "S-42",
	})
	require.NoError(t, err)
	assert.Equal(t, role.Student, sess.Role)
	assert.Equal(t, "S-42", sess.StudentID)

	accounts := st.GetAccounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "alice@uni.edu", accounts[0].Email)

	// A session was persisted and it carries no password field at all.
	persisted, ok := st.GetSession()
	require.True(t, ok)
	assert.Equal(t, "alice@uni.edu", persisted.Email)
}

func TestSignup_DuplicateEmailAcrossBothLists(t *testing.T) {
	auth, st := newAuth()

	require.NoError(t, st.SaveAccounts([]models.Account{{Email: "a@b.com", Password: "x"}}))
	_, err := auth.Signup(SignupInput{Name: "B", Email: "a@b.com", Password: "different", Role: "student"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, st.SaveDoctors([]models.Doctor{{ID: "d1", Email: "dr.x@gmail.com"}}))
	_, err = auth.Signup(SignupInput{Name: "X", Email: "dr.x@gmail.com", Role: "doctor"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignup_DoctorEmailFormatGate(t *testing.T) {
	auth, _ := newAuth()

	_, err := auth.Signup(SignupInput{Name: "Sarah", Email: "sarah@gmail.com", Role: "doctor"})
	assert.ErrorIs(t, err, ErrInvalidDoctorEmailFormat)

	sess, err := auth.Signup(SignupInput{Name: "Sarah", Email: "dr.sarah@gmail.com", Role: "doctor"})
	require.NoError(t, err)
	assert.Equal(t, role.Doctor, sess.Role)
	assert.NotEmpty(t, sess.DoctorID)
	assert.Equal(t, "Not specified", sess.Specialization)
}

func TestSignup_DoctorRecordDefaults(t *testing.T) {
	auth, st := newAuth()

	_, err := auth.Signup(SignupInput{Name: "Sarah", Email: "dr.sarah@gmail.com", Password: "pw", Role: "doctor"})
	require.NoError(t, err)

	doctors := st.GetDoctors()
	require.Len(t, doctors, 1)
	assert.True(t, doctors[0].Active)
	assert.NotEmpty(t, doctors[0].ID)
	assert.False(t, doctors[0].CreatedAt.IsZero())
}

func TestSignup_AdminClaimCannotMintAdmin(t *testing.T) {
	auth, _ := newAuth()

	sess, err := auth.Signup(SignupInput{Name: "Eve", Email: role.AdminEmail, Password: "x", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, role.Student, sess.Role)
}

func TestLogin_AdminAllowListExact(t *testing.T) {
	auth, _ := newAuth()

	sess, err := auth.Login(role.AdminEmail, role.AdminPassword, "admin")
	require.NoError(t, err)
	assert.Equal(t, role.Admin, sess.Role)
	assert.Equal(t, role.AdminName, sess.Name)

	_, err = auth.Login(role.AdminEmail, "wrong", "admin")
	assert.ErrorIs(t, err, ErrInvalidAdminCredentials)

	// No other email ever succeeds as admin; the claim degrades to the
	// student path instead.
	_, err = auth.Login("other@gmail.com", role.AdminPassword, "admin")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DoctorPath(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveDoctors([]models.Doctor{
		{ID: "d1", Name: "Dr. X", Email: "dr.x@gmail.com", Password: "p", Specialization: "Anxiety", Active: true},
	}))

	sess, err := auth.Login("dr.x@gmail.com", "p", "doctor")
	require.NoError(t, err)
	assert.Equal(t, role.Doctor, sess.Role)
	assert.Equal(t, "d1", sess.DoctorID)
	assert.Equal(t, "Anxiety", sess.Specialization)

	_, err = auth.Login("dr.x@gmail.com", "wrong", "doctor")
	assert.ErrorIs(t, err, ErrInvalidDoctorCredentials)

	_, err = auth.Login("dr.unknown@gmail.com", "p", "doctor")
	assert.ErrorIs(t, err, ErrInvalidDoctorCredentials)
}

func TestLogin_DeactivatedDoctorIndistinguishable(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveDoctors([]models.Doctor{
		{ID: "d1", Name: "Dr. X", Email: "dr.x@gmail.com", Password: "p", Active: false},
	}))

	// Right password on a deactivated account reads the same as a wrong
	// password, so account status never leaks.
	_, err := auth.Login("dr.x@gmail.com", "p", "doctor")
	assert.ErrorIs(t, err, ErrInvalidDoctorCredentials)
}

func TestLogin_DemoStudentShortCircuit(t *testing.T) {
	auth, _ := newAuth()

	sess, err := auth.Login("student@gmail.com", "student123", "student")
	require.NoError(t, err)
	assert.Equal(t, role.Student, sess.Role)
}

func TestLogin_PersistedStudentAccount(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveAccounts([]models.Account{
		{Name: "Alice", Email: "alice@uni.edu", Password: "pw", StudentID: "S-1"},
	}))

	sess, err := auth.Login("alice@uni.edu", "pw", "student")
	require.NoError(t, err)
	assert.Equal(t, "S-1", sess.StudentID)

	_, err = auth.Login("alice@uni.edu", "nope", "student")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_ClearsSession(t *testing.T) {
	auth, st := newAuth()
	_, err := auth.Login("student@gmail.com", "student123", "student")
	require.NoError(t, err)

	auth.Logout()
	_, ok := st.GetSession()
	assert.False(t, ok)
}

func TestRestoreSession_RederivesRole(t *testing.T) {
	auth, st := newAuth()

	// A stored session claiming admin for a non-allow-listed email must
	// come back as student.
	require.NoError(t, st.SaveSession(models.Session{Name: "Eve", Email: "eve@x.com", Role: "admin"}))
	sess, ok := auth.RestoreSession()
	require.True(t, ok)
	assert.Equal(t, role.Student, sess.Role)

	// And the reconciled role was persisted back.
	persisted, ok := st.GetSession()
	require.True(t, ok)
	assert.Equal(t, role.Student, persisted.Role)
}

func TestRestoreSession_DiscardsMalformed(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveSession(models.Session{Name: "NoEmail", Role: "student"}))

	_, ok := auth.RestoreSession()
	assert.False(t, ok)
	_, ok = st.GetSession()
	assert.False(t, ok)
}

func TestRestoreSession_RoundTrip(t *testing.T) {
	auth, _ := newAuth()
	login, err := auth.Login(role.AdminEmail, role.AdminPassword, "admin")
	require.NoError(t, err)

	restored, ok := auth.RestoreSession()
	require.True(t, ok)
	assert.Equal(t, login.Role, restored.Role)
	assert.Equal(t, role.Derive(restored.Role, restored.Email), restored.Role)
}

func TestCreateDoctorAccount(t *testing.T) {
	auth, st := newAuth()

	_, err := auth.CreateDoctorAccount(DoctorInput{Name: "S", Email: "sarah@gmail.com"})
	assert.ErrorIs(t, err, ErrInvalidDoctorEmailFormat)

	doctor, err := auth.CreateDoctorAccount(DoctorInput{Name: "S", Email: "dr.sarah@gmail.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, doctor.Active)
	assert.Empty(t, doctor.Password)
	require.Len(t, st.GetDoctors(), 1)

	_, err = auth.CreateDoctorAccount(DoctorInput{Name: "S2", Email: "dr.sarah@gmail.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestToggleDoctorStatus(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveDoctors([]models.Doctor{{ID: "d1", Email: "dr.x@gmail.com", Active: true}}))

	require.NoError(t, auth.ToggleDoctorStatus("d1", false))
	assert.False(t, st.GetDoctors()[0].Active)

	// Unknown id is a silent no-op.
	require.NoError(t, auth.ToggleDoctorStatus("missing", true))
	assert.False(t, st.GetDoctors()[0].Active)
}

func TestListDoctors_ActiveFilterAndPasswordScrub(t *testing.T) {
	auth, st := newAuth()
	require.NoError(t, st.SaveDoctors([]models.Doctor{
		{ID: "d1", Email: "dr.a@gmail.com", Password: "secret", Active: true},
		{ID: "d2", Email: "dr.b@gmail.com", Password: "secret", Active: false},
	}))

	active := auth.ListDoctors(true)
	require.Len(t, active, 1)
	assert.Equal(t, "d1", active[0].ID)
	assert.Empty(t, active[0].Password)

	all := auth.ListDoctors(false)
	assert.Len(t, all, 2)
}
