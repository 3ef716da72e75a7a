package traits

// Trait codes by group
const (
	STR = "STR"
	PER = "PER"
	INT = "INT"
	DEX = "DEX"
	CHA = "CHA"
	VIT = "VIT"
	MAG = "MAG"

	HP = "HP"
	SP = "SP"
	BM = "BM"
	WM = "WM"

	FORT = "FORT"
	REFL = "REFL"
	WILL = "WILL"

	ATKM = "ATKM"
	ATKR = "ATKR"
	ATKU = "ATKU"
	DEF  = "DEF"
	ACT  = "ACT"
	PP   = "PP"

	ENC = "ENC"
	MV  = "MV"
	LV  = "LV"
	XP  = "XP"
)

// Trait groups. Primary traits are player-allocated during chargen; the rest
// are derived or managed by other subsystems.
var (
	Primary   = []string{STR, PER, INT, DEX, CHA, VIT, MAG}
	Secondary = []string{HP, SP, BM, WM}
	Saves     = []string{FORT, REFL, WILL}
	Combat    = []string{ATKM, ATKR, ATKU, DEF, PP}
	Other     = []string{LV, XP, ENC, MV, ACT}
)

// All returns every trait code, primary first
func All() []string {
	all := make([]string, 0, len(Primary)+len(Secondary)+len(Saves)+len(Combat)+len(Other))
	all = append(all, Primary...)
	all = append(all, Secondary...)
	all = append(all, Saves...)
	all = append(all, Combat...)
	all = append(all, Other...)
	return all
}

// XPExtraLevelBoundaries is the key under which XP carries its level table
const XPExtraLevelBoundaries = "level_boundaries"

// LevelBoundaries returns the XP thresholds read by the leveling subsystem.
// The final level is open-ended. A fresh slice is returned so no two stores
// alias the same metadata.
func LevelBoundaries() []interface{} {
	return []interface{}{500, 2000, 4500, "unlimited"}
}

// DefaultMV is the base movement value for archetypes without an override
const DefaultMV = 6

func intPtr(n int) *int { return &n }

// Defaults returns a fresh trait store holding the canonical definition of
// every trait code. Each call builds a new store; callers never share one.
func Defaults() Store {
	return Store{
		// primary
		STR: {Kind: KindTrait, Base: 1, Name: "Strength"},
		PER: {Kind: KindTrait, Base: 1, Name: "Perception"},
		INT: {Kind: KindTrait, Base: 1, Name: "Intelligence"},
		DEX: {Kind: KindTrait, Base: 1, Name: "Dexterity"},
		CHA: {Kind: KindTrait, Base: 1, Name: "Charisma"},
		VIT: {Kind: KindTrait, Base: 1, Name: "Vitality"},
		// magic; BM/WM max stays 0 until derivation confirms MAG > 0
		MAG: {Kind: KindTrait, Base: 0, Name: "Magic"},
		BM:  {Kind: KindGauge, Min: intPtr(0), Max: intPtr(0), Name: "Black Mana"},
		WM:  {Kind: KindGauge, Min: intPtr(0), Max: intPtr(0), Name: "White Mana"},
		// secondary
		HP: {Kind: KindGauge, Name: "Health"},
		SP: {Kind: KindGauge, Name: "Stamina"},
		// saves
		FORT: {Kind: KindTrait, Name: "Fortitude Save"},
		REFL: {Kind: KindTrait, Name: "Reflex Save"},
		WILL: {Kind: KindTrait, Name: "Will Save"},
		// combat
		ATKM: {Kind: KindTrait, Name: "Melee Attack"},
		ATKR: {Kind: KindTrait, Name: "Ranged Attack"},
		ATKU: {Kind: KindTrait, Name: "Unarmed Attack"},
		DEF:  {Kind: KindTrait, Name: "Defense"},
		ACT:  {Kind: KindCounter, Min: intPtr(0), Name: "Action Points"},
		PP:   {Kind: KindCounter, Min: intPtr(0), Name: "Power Points"},
		// misc
		ENC: {Kind: KindCounter, Min: intPtr(0), Name: "Carry Weight"},
		MV:  {Kind: KindTrait, Base: DefaultMV, Name: "Movement Points"},
		LV:  {Kind: KindTrait, Name: "Level"},
		XP: {Kind: KindTrait, Name: "Experience",
			Extra: map[string]interface{}{XPExtraLevelBoundaries: LevelBoundaries()}},
	}
}
