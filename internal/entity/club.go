package entity

type Club struct {
	ID                   int64   `json:"club_id" db:"club_id"`
	Name                 string  `json:"club_name" db:"name"`
	ClubType             string  `json:"club_type" db:"club_type"`
	Budget               float64 `json:"budget" db:"budget"`
	MemberCount          int     `json:"member_count" db:"member_count"`
	CompetitivenessLevel string  `json:"competitiveness_level" db:"competitiveness_level"`
}
