package services

import (
	"errors"
	"testing"

	"github.com/ahmad-zhafir/ReFeed-sub001/models"
)

func TestAssignRole(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "new@example.com", "")

	svc := NewUserService(db)
	if err := svc.AssignRole(user.ID, models.RoleFarmer); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}

	got, err := svc.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Role != models.RoleFarmer {
		t.Errorf("Role = %q, want farmer", got.Role)
	}
}

func TestAssignRoleOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "new@example.com", "")

	svc := NewUserService(db)
	if err := svc.AssignRole(user.ID, models.RoleFarmer); err != nil {
		t.Fatalf("first AssignRole: %v", err)
	}
	if err := svc.AssignRole(user.ID, models.RoleGenerator); !errors.Is(err, ErrRoleAlreadyAssigned) {
		t.Fatalf("err = %v, want ErrRoleAlreadyAssigned", err)
	}

	got, _ := svc.FindByID(user.ID)
	if got.Role != models.RoleFarmer {
		t.Errorf("Role = %q after rejected reassignment, want farmer", got.Role)
	}
}

func TestAssignRoleRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "new@example.com", "")

	svc := NewUserService(db)
	if err := svc.AssignRole(user.ID, "admin"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestAssignRoleUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	svc := NewUserService(db)
	if err := svc.AssignRole(9999, models.RoleFarmer); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "farm@example.com", models.RoleFarmer)

	svc := NewUserService(db)
	err := svc.UpdateProfile(user.ID, ProfileInput{
		FullName:       "Siti Aminah",
		Contact:        "012-3456789",
		HomeAddress:    "Kuala Lumpur",
		HomeLat:        f64(3.1390),
		HomeLng:        f64(101.6869),
		SearchRadiusKm: 25,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	got, _ := svc.FindByID(user.ID)
	if got.FullName != "Siti Aminah" {
		t.Errorf("FullName = %q", got.FullName)
	}
	if got.HomeLat == nil || *got.HomeLat != 3.1390 {
		t.Errorf("HomeLat = %v, want 3.1390", got.HomeLat)
	}
	if got.SearchRadiusKm != 25 {
		t.Errorf("SearchRadiusKm = %v, want 25", got.SearchRadiusKm)
	}
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "farm@example.com", models.RoleFarmer)

	svc := NewUserService(db)
	if err := svc.UpdateProfile(user.ID, ProfileInput{FullName: "Only Name"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	got, _ := svc.FindByID(user.ID)
	if got.FullName != "Only Name" {
		t.Errorf("FullName = %q", got.FullName)
	}
	if got.Contact != user.Contact {
		t.Errorf("Contact changed: %q -> %q", user.Contact, got.Contact)
	}
}

func TestDeleteUserHidesAccount(t *testing.T) {
	db := setupTestDB(t)
	user := createUser(t, db, "farm@example.com", models.RoleFarmer)

	svc := NewUserService(db)
	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := svc.FindByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound after delete", err)
	}
}
