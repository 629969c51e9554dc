package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"klubkas/models"
	"klubkas/pkg/apperr"
)

// Memory is the in-memory record store used by tests. It honors the same
// contracts as the GORM store: composite-key upserts collapse to one row and
// duplicate emails fail with Conflict.
type Memory struct {
	mu           sync.Mutex
	users        map[string]*models.User
	roles        map[string]*models.Role // keyed by user id
	members      map[string]*models.Member
	transactions map[string]*models.Transaction
	dues         map[string]*models.DuesStatus    // keyed by member|year|month
	schedule     map[string]*models.CourtSchedule // keyed by day|slot
}

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[string]*models.User),
		roles:        make(map[string]*models.Role),
		members:      make(map[string]*models.Member),
		transactions: make(map[string]*models.Transaction),
		dues:         make(map[string]*models.DuesStatus),
		schedule:     make(map[string]*models.CourtSchedule),
	}
}

// AddUser seeds a login identity, with an optional role record.
func (m *Memory) AddUser(u models.User, roleName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := u
	m.users[cp.ID] = &cp
	if roleName != "" {
		m.roles[cp.ID] = &models.Role{ID: "role-" + cp.ID, UserID: cp.ID, RoleName: roleName}
	}
}

// AddMember seeds a roster entry.
func (m *Memory) AddMember(mb models.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := mb
	m.members[cp.ID] = &cp
}

func (m *Memory) FindUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			if r, ok := m.roles[u.ID]; ok {
				rc := *r
				cp.Role = &rc
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) ListActiveTransactions() ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Transaction
	for _, t := range m.transactions {
		if !t.IsDeleted {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TanggalTransaksi.After(out[j].TanggalTransaksi)
	})
	return out, nil
}

func (m *Memory) GetTransaction(id string) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *Memory) CreateTransaction(t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	m.transactions[cp.ID] = &cp
	return nil
}

func (m *Memory) UpdateTransaction(t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.UpdatedAt = time.Now()
	cp := *t
	m.transactions[cp.ID] = &cp
	return nil
}

func (m *Memory) ListActiveMembers() ([]models.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Member
	for _, mb := range m.members {
		if mb.StatusKeanggotaan == "aktif" {
			out = append(out, *mb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) ListMembers() ([]models.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Member
	for _, mb := range m.members {
		out = append(out, *mb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetMember(id string) (*models.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mb, ok := m.members[id]
	if !ok {
		return nil, nil
	}
	cp := *mb
	return &cp, nil
}

func (m *Memory) FindMemberByEmail(email, excludeID string) (*models.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findMemberByEmailLocked(email, excludeID), nil
}

func (m *Memory) findMemberByEmailLocked(email, excludeID string) *models.Member {
	for _, mb := range m.members {
		if mb.ID == excludeID || mb.Email == nil {
			continue
		}
		if *mb.Email == email {
			cp := *mb
			return &cp
		}
	}
	return nil
}

func (m *Memory) CreateMember(mb *models.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mb.Email != nil && m.findMemberByEmailLocked(*mb.Email, mb.ID) != nil {
		return apperr.New(apperr.Conflict, "Email sudah terdaftar")
	}
	mb.CreatedAt = time.Now()
	mb.UpdatedAt = mb.CreatedAt
	cp := *mb
	m.members[cp.ID] = &cp
	return nil
}

func (m *Memory) UpdateMember(mb *models.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mb.Email != nil && m.findMemberByEmailLocked(*mb.Email, mb.ID) != nil {
		return apperr.New(apperr.Conflict, "Email sudah terdaftar oleh anggota lain")
	}
	mb.UpdatedAt = time.Now()
	cp := *mb
	m.members[cp.ID] = &cp
	return nil
}

func (m *Memory) CreateMemberAccount(mb *models.Member, u *models.User, r *models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return apperr.New(apperr.Conflict, "Akun dengan email ini sudah ada")
		}
	}
	uc := *u
	m.users[uc.ID] = &uc
	rc := *r
	m.roles[rc.UserID] = &rc
	mb.UserID = &u.ID
	mc := *mb
	m.members[mc.ID] = &mc
	return nil
}

func duesKey(memberID string, year, month int) string {
	return fmt.Sprintf("%s|%d|%d", memberID, year, month)
}

func (m *Memory) ListDues(year int) ([]models.DuesStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DuesStatus
	for _, d := range m.dues {
		if d.Year == year {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *Memory) UpsertDues(d *models.DuesStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := duesKey(d.MemberID, d.Year, d.Month)
	if existing, ok := m.dues[key]; ok {
		existing.Status = d.Status
		existing.UpdatedBy = d.UpdatedBy
		existing.UpdatedAt = time.Now()
		return nil
	}
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	cp := *d
	m.dues[key] = &cp
	return nil
}

func slotKey(day int, slot string) string {
	return fmt.Sprintf("%d|%s", day, slot)
}

func (m *Memory) ListSchedule() ([]models.CourtSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CourtSchedule
	for _, c := range m.schedule {
		out = append(out, *c)
	}
	return out, nil
}

func (m *Memory) UpsertSchedule(c *models.CourtSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := slotKey(c.DayOfWeek, c.TimeSlot)
	if existing, ok := m.schedule[key]; ok {
		existing.Status = c.Status
		existing.UserName = c.UserName
		existing.Contact = c.Contact
		existing.UpdatedBy = c.UpdatedBy
		existing.UpdatedAt = time.Now()
		return nil
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.schedule[key] = &cp
	return nil
}

// DuesCount reports stored dues rows for a member-year-month key; tests use
// it to assert upsert idempotence.
func (m *Memory) DuesCount(memberID string, year, month int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dues[duesKey(memberID, year, month)]; ok {
		return 1
	}
	return 0
}
