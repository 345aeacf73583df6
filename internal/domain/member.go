package domain

type Member struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

func (m Member) Same(other Member) bool {
	return m.ID == other.ID
}
