package domain

// TeamTag identifies the organizational team a campaign's cost is
// attributed to. The set is closed; TeamOutros is the fallback for
// campaigns no keyword rule recognizes.
type TeamTag string

const (
	TeamCLT      TeamTag = "CLT"
	TeamOutbound TeamTag = "OUTBOUND"
	TeamAtivacao TeamTag = "ATIVACAO"
	TeamCSApp    TeamTag = "CSAPP"
	TeamCP       TeamTag = "CP"
	TeamOutros   TeamTag = "OUTROS"
)

func (t TeamTag) String() string {
	return string(t)
}
