package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
)

func TestNotificationTemplate_Build(t *testing.T) {
	t.Parallel()

	recipient := uuid.New()
	shopID := uuid.New()

	template := NotificationTemplate{
		Type:           NotificationShopRegistered,
		Title:          "New boutique registration",
		Body:           "Fashion Co is waiting for review",
		Related:        &RelatedEntity{Kind: "shop", ID: shopID},
		Priority:       PriorityHigh,
		ActionRequired: true,
		ActionType:     ActionReviewShop,
		ActionURL:      "/admin/shops/pending",
	}

	row := template.Build(recipient, RoleAdmin)

	if row.ID == uuid.Nil {
		t.Fatal("Build() did not assign an ID")
	}
	if row.RecipientID != recipient {
		t.Fatalf("RecipientID = %s, want %s", row.RecipientID, recipient)
	}
	if row.RecipientRole != RoleAdmin {
		t.Fatalf("RecipientRole = %s, want %s", row.RecipientRole, RoleAdmin)
	}
	if row.Read || row.Archived {
		t.Fatal("new notification must start unread and unarchived")
	}
	if row.Related == nil || row.Related.ID != shopID {
		t.Fatal("related entity pointer was not carried over")
	}
	if row.CreatedAt.IsZero() {
		t.Fatal("CreatedAt was not set")
	}
}

func TestNotificationTemplate_Build_TruncationKeepsValidUTF8(t *testing.T) {
	t.Parallel()

	// A leading ASCII byte shifts every two-byte rune off the byte limit, so a
	// naive byte slice would cut the last rune in half.
	template := NotificationTemplate{
		Type:  NotificationShopRejected,
		Title: "é" + strings.Repeat("é", NotificationTitleMaxLen),
		Body:  "a" + strings.Repeat("é", NotificationBodyMaxLen),
	}

	row := template.Build(uuid.New(), RoleVendor)

	if !utf8.ValidString(row.Title) {
		t.Fatalf("Title is not valid UTF-8 after truncation: %q", row.Title[len(row.Title)-4:])
	}
	if !utf8.ValidString(row.Body) {
		t.Fatalf("Body is not valid UTF-8 after truncation: %q", row.Body[len(row.Body)-4:])
	}
	if len(row.Title) > NotificationTitleMaxLen {
		t.Fatalf("len(Title) = %d, want <= %d", len(row.Title), NotificationTitleMaxLen)
	}
	if len(row.Body) > NotificationBodyMaxLen {
		t.Fatalf("len(Body) = %d, want <= %d", len(row.Body), NotificationBodyMaxLen)
	}
}

func TestNotificationTemplate_Build_TruncatesLongText(t *testing.T) {
	t.Parallel()

	template := NotificationTemplate{
		Type:  NotificationShopRejected,
		Title: strings.Repeat("t", NotificationTitleMaxLen+40),
		Body:  strings.Repeat("b", NotificationBodyMaxLen+500),
	}

	row := template.Build(uuid.New(), RoleVendor)

	if len(row.Title) != NotificationTitleMaxLen {
		t.Fatalf("len(Title) = %d, want %d", len(row.Title), NotificationTitleMaxLen)
	}
	if len(row.Body) != NotificationBodyMaxLen {
		t.Fatalf("len(Body) = %d, want %d", len(row.Body), NotificationBodyMaxLen)
	}
}
