package services

import (
	"testing"

	"dhanam/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("asha", "Asha@Example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "asha@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "s3cretpass" {
			t.Error("expected password to be hashed")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("asha", "asha@example.com", "s3cretpass")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("asha2", "ASHA@example.com", "otherpass")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "asha@example.com", "s3cretpass")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("asha", "", "s3cretpass")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("asha", "asha@example.com", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("asha", "asha@example.com", "s3cretpass")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "s3cretpass") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpass") {
		t.Error("expected wrong password to fail")
	}
}

func TestGetUser(t *testing.T) {
	t.Run("by_email_and_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUserWithEmail(t, db, "lookup@example.com")

		byEmail, err := svc.GetUserByEmail("Lookup@Example.com")
		testutil.AssertNoError(t, err)
		if byEmail.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, byEmail.ID)
		}

		byID, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if byID.Email != "lookup@example.com" {
			t.Errorf("unexpected email %s", byID.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("ghost@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")

		_, err = svc.GetUserByID("missing-id")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
