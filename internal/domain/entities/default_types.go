package entities

// TypeInfo describes a type tag for listings.
type TypeInfo struct {
	Tag         TypeTag `json:"tag"`
	Description string  `json:"description"`
}

// DefaultTypeTags carries a one-line description for every known tag.
var DefaultTypeTags = []TypeInfo{
	{Tag: TypeNormal, Description: "Plain creatures with no elemental affinity"},
	{Tag: TypeFire, Description: "Flame and heat"},
	{Tag: TypeWater, Description: "Sea, rivers and rain"},
	{Tag: TypeElectric, Description: "Lightning and static"},
	{Tag: TypeGrass, Description: "Plants and forests"},
	{Tag: TypeIce, Description: "Snow and frost"},
	{Tag: TypeFighting, Description: "Martial strength"},
	{Tag: TypePoison, Description: "Toxins and venom"},
	{Tag: TypeGround, Description: "Earth and sand"},
	{Tag: TypeFlying, Description: "Birds and sky"},
	{Tag: TypePsychic, Description: "Mind and telekinesis"},
	{Tag: TypeBug, Description: "Insects"},
	{Tag: TypeRock, Description: "Stone and fossils"},
	{Tag: TypeGhost, Description: "Spirits and shadows"},
	{Tag: TypeDragon, Description: "Ancient dragons"},
	{Tag: TypeDark, Description: "Cunning and night"},
	{Tag: TypeSteel, Description: "Metal and machines"},
	{Tag: TypeFairy, Description: "Charm and fey magic"},
}
