package entity

import "testing"

func TestShopStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from ShopStatus
		to   ShopStatus
		want bool
	}{
		{name: "pending to approved", from: ShopStatusPending, to: ShopStatusApproved, want: true},
		{name: "pending to rejected", from: ShopStatusPending, to: ShopStatusRejected, want: true},
		{name: "pending to suspended", from: ShopStatusPending, to: ShopStatusSuspended, want: false},
		{name: "approved to suspended", from: ShopStatusApproved, to: ShopStatusSuspended, want: true},
		{name: "approved to approved", from: ShopStatusApproved, to: ShopStatusApproved, want: false},
		{name: "approved to rejected", from: ShopStatusApproved, to: ShopStatusRejected, want: false},
		{name: "suspended to approved", from: ShopStatusSuspended, to: ShopStatusApproved, want: true},
		{name: "suspended to rejected", from: ShopStatusSuspended, to: ShopStatusRejected, want: false},
		{name: "rejected is terminal", from: ShopStatusRejected, to: ShopStatusApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestShopStatus_VendorEditable(t *testing.T) {
	t.Parallel()

	editable := map[ShopStatus]bool{
		ShopStatusPending:   true,
		ShopStatusApproved:  true,
		ShopStatusSuspended: false,
		ShopStatusRejected:  false,
	}

	for status, want := range editable {
		if got := status.VendorEditable(); got != want {
			t.Fatalf("VendorEditable(%s) = %v, want %v", status, got, want)
		}
	}
}

func TestShopCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []ShopCategory{CategoryFashion, CategoryFood, CategoryElectronics, CategoryBeauty, CategoryHome, CategoryServices} {
		if !c.IsValid() {
			t.Fatalf("IsValid(%s) = false, want true", c)
		}
	}

	if ShopCategory("groceries").IsValid() {
		t.Fatal("IsValid(groceries) = true, want false")
	}
}
