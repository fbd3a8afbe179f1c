package memory

import (
	"context"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"
	"github.com/Harshavarthini19/campus-connect/internal/utils"
)

func ptr[T any](v T) *T { return &v }

// SeedDemo loads a small demo dataset into the memory backend so the
// app is usable out of the box in dev. Passwords: password123 /
// staff123 / admin123.
func SeedDemo(ctx context.Context, users *UserRepo, issues *IssueRepo, notifs *NotificationRepo) error {
	type acct struct {
		email, name, dept, password string
		role                        models.Role
	}
	accts := []acct{
		{"john.student@university.edu", "John Anderson", "Computer Science", "password123", models.RoleReporter},
		{"prof.williams@university.edu", "Dr. Robert Williams", "Engineering", "staff123", models.RoleStaff},
		{"admin@university.edu", "Sarah Mitchell", "Campus Operations", "admin123", models.RoleAdmin},
	}

	created := make([]*models.Account, 0, len(accts))
	for _, a := range accts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			return err
		}
		u, err := users.Create(ctx, a.email, a.name, a.role, a.dept, hash)
		if err != nil {
			return err
		}
		created = append(created, u)
	}
	reporter, admin := created[0], created[2]

	ac := &models.Issue{
		Title:        "Broken Air Conditioning in Library",
		Description:  "The AC unit in the main library reading area has been malfunctioning for the past week.",
		Category:     models.CategoryInfrastructure,
		Priority:     models.PriorityHigh,
		LocationName: "Main Library - Reading Hall",
		Lat:          ptr(40.7128),
		Lng:          ptr(-74.006),
		ReporterID:   reporter.ID,
		ReporterName: reporter.Name,
	}
	if err := issues.Create(ctx, ac); err != nil {
		return err
	}
	if _, err := issues.Update(ctx, ac.ID, repository.IssuePatch{
		Status:     ptr(models.StatusInProgress),
		AssignedTo: &admin.ID,
	}); err != nil {
		return err
	}
	if err := issues.AddComment(ctx, ac.ID, &models.Comment{
		UserID:   admin.ID,
		UserName: admin.Name,
		Content:  "Maintenance team has been notified. They will inspect the AC unit tomorrow.",
	}); err != nil {
		return err
	}

	wifi := &models.Issue{
		Title:        "WiFi Connectivity Issues in Dormitory B",
		Description:  "Frequent WiFi disconnections in Dormitory B, especially during evening hours.",
		Category:     models.CategoryTechnical,
		Priority:     models.PriorityUrgent,
		LocationName: "Dormitory B - All Floors",
		ReporterID:   reporter.ID,
		ReporterName: reporter.Name,
		IsAnonymous:  true,
	}
	if err := issues.Create(ctx, wifi); err != nil {
		return err
	}

	return notifs.Create(ctx, &models.Notification{
		UserID:  reporter.ID,
		Title:   "Issue Status Updated",
		Message: `Your issue "Broken Air Conditioning in Library" status has been changed to in progress.`,
		Kind:    models.KindInfo,
		Link:    "/my-reports",
	})
}
