package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"klubkas/models"
	"klubkas/pkg/apperr"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) FindUserByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func testStore(t *testing.T) *fakeUserStore {
	t.Helper()
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	return &fakeUserStore{users: map[string]*models.User{
		"budi@tennis.com": {
			ID: "u-officer", Email: "budi@tennis.com", Name: "Budi", Password: hash,
			Role: &models.Role{UserID: "u-officer", RoleName: "pengurus"},
		},
		"dina@tennis.com": {
			ID: "u-member", Email: "dina@tennis.com", Name: "Dina", Password: hash,
		},
	}}
}

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("secret"))
	u := AuthUser{ID: "u1", Email: "budi@tennis.com", Name: "Budi", Role: RolePengurus}
	token, err := codec.Mint(u)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := codec.Verify(token)
	if !ok {
		t.Fatal("expected valid token")
	}
	if got != u {
		t.Fatalf("roundtrip mismatch: %+v != %+v", got, u)
	}
	if _, ok := codec.Verify("not-a-token"); ok {
		t.Fatal("garbage token must not verify")
	}
	if _, ok := NewTokenCodec([]byte("other")).Verify(token); ok {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestResolverTriesSourcesInOrder(t *testing.T) {
	codec := NewTokenCodec([]byte("secret"))
	rv := NewResolver(CookieStrategy(codec, CookieName), BearerStrategy(codec))
	token, _ := codec.Mint(AuthUser{ID: "u1", Email: "a@b.c", Role: RoleAnggota})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := rv.Resolve(req); ok {
		t.Fatal("anonymous request must not resolve")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	if u, ok := rv.Resolve(req); !ok || u.ID != "u1" {
		t.Fatalf("cookie source failed: ok=%v u=%+v", ok, u)
	}

	// broken cookie falls through to the bearer header
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "expired-garbage"})
	req.Header.Set("Authorization", "Bearer "+token)
	if u, ok := rv.Resolve(req); !ok || u.ID != "u1" {
		t.Fatalf("bearer fallthrough failed: ok=%v u=%+v", ok, u)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(testStore(t), NewTokenCodec([]byte("secret")))

	u, token, err := svc.Login("budi@tennis.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != RolePengurus || token == "" {
		t.Fatalf("unexpected login result: %+v token=%q", u, token)
	}

	// no role record defaults to anggota
	u, _, err = svc.Login("dina@tennis.com", "password123")
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != RoleAnggota {
		t.Fatalf("expected anggota, got %v", u.Role)
	}

	if _, _, err = svc.Login("budi@tennis.com", "wrong"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("wrong password: expected Unauthorized, got %v", err)
	}
	if _, _, err = svc.Login("nobody@tennis.com", "password123"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("unknown email: expected Unauthorized, got %v", err)
	}
	if _, _, err = svc.Login("", ""); apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("missing fields: expected Validation, got %v", err)
	}
}

func TestGates(t *testing.T) {
	officer := AuthUser{ID: "u1", Role: RolePengurus}
	member := AuthUser{ID: "u2", Role: RoleAnggota}
	var anon AuthUser

	if err := RequireAuthenticated(anon); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if err := RequireAuthenticated(member); err != nil {
		t.Fatalf("member must pass: %v", err)
	}
	if err := RequireOfficer(anon, "x"); apperr.KindOf(err) != apperr.Unauthorized {
		t.Fatalf("anonymous must be Unauthorized, not Forbidden: %v", err)
	}
	if err := RequireOfficer(member, "Hanya pengurus"); apperr.KindOf(err) != apperr.Forbidden {
		t.Fatalf("member must be Forbidden: %v", err)
	}
	if err := RequireOfficer(officer, "x"); err != nil {
		t.Fatalf("officer must pass: %v", err)
	}
}
