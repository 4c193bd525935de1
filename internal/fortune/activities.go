package fortune

// Activity identifies an almanac activity. The value doubles as the i18n
// message suffix for its localized display name.
type Activity string

// The activity catalogue, grouped the way the almanac presents it.
const (
	// Marriage
	Wedding    Activity = "wedding"
	Engagement Activity = "engagement"
	Proposal   Activity = "proposal"
	Betrothal  Activity = "betrothal"
	InLawVisit Activity = "in_law_visit"
	Visit      Activity = "visit"

	// Business
	Opening   Activity = "opening"
	Contract  Activity = "contract"
	Trading   Activity = "trading"
	Finances  Activity = "finances"
	Warehouse Activity = "warehouse"
	Shipping  Activity = "shipping"
	Signboard Activity = "signboard"

	// Construction
	Digging        Activity = "digging"
	GroundBreaking Activity = "ground_breaking"
	Renovation     Activity = "renovation"
	Foundations    Activity = "foundations"
	Beams          Activity = "beams"
	Pillars        Activity = "pillars"
	Doors          Activity = "doors"
	Consecration   Activity = "consecration"

	// Household
	MovingHouse     Activity = "moving_house"
	Relocation      Activity = "relocation"
	BedInstallation Activity = "bed_installation"
	Kitchen         Activity = "kitchen"
	Cleaning        Activity = "cleaning"
	Property        Activity = "property"

	// Social
	Friends     Activity = "friends"
	Travel      Activity = "travel"
	LongJourney Activity = "long_journey"
	Banquet     Activity = "banquet"
	Employment  Activity = "employment"

	// Ceremonial
	Ceremonies Activity = "ceremonies"
	Prayers    Activity = "prayers"
	Offspring  Activity = "offspring"
	Fasting    Activity = "fasting"
	Bathing    Activity = "bathing"

	// Medical
	Doctor      Activity = "doctor"
	Treatment   Activity = "treatment"
	Acupuncture Activity = "acupuncture"
	Medicine    Activity = "medicine"

	// Funerary
	Burial     Activity = "burial"
	Exhumation Activity = "exhumation"
	Mourning   Activity = "mourning"
	Grieving   Activity = "grieving"

	// Agriculture
	Planting  Activity = "planting"
	Herding   Activity = "herding"
	Livestock Activity = "livestock"
	Hunting   Activity = "hunting"
	Fishing   Activity = "fishing"

	// Other
	Clothing     Activity = "clothing"
	Haircut      Activity = "haircut"
	Tomb         Activity = "tomb"
	Headstone    Activity = "headstone"
	Purification Activity = "purification"
	Storage      Activity = "storage"
	Litigation   Activity = "litigation"
	Heights      Activity = "heights"
)

// Category groups activities for pickers and reverse queries.
type Category struct {
	Name       string
	Activities []Activity
}

// Categories lists the catalogue in presentation order.
var Categories = []Category{
	{Name: "marriage", Activities: []Activity{Wedding, Engagement, Proposal, Betrothal, InLawVisit, Visit}},
	{Name: "business", Activities: []Activity{Opening, Contract, Trading, Finances, Warehouse, Shipping, Signboard}},
	{Name: "construction", Activities: []Activity{Digging, GroundBreaking, Renovation, Foundations, Beams, Pillars, Doors, Consecration}},
	{Name: "household", Activities: []Activity{MovingHouse, Relocation, BedInstallation, Kitchen, Cleaning, Property}},
	{Name: "social", Activities: []Activity{Friends, Travel, LongJourney, Banquet, Employment}},
	{Name: "ceremonial", Activities: []Activity{Ceremonies, Prayers, Offspring, Fasting, Bathing}},
	{Name: "medical", Activities: []Activity{Doctor, Treatment, Acupuncture, Medicine}},
	{Name: "funerary", Activities: []Activity{Burial, Exhumation, Mourning, Grieving}},
	{Name: "agriculture", Activities: []Activity{Planting, Herding, Livestock, Hunting, Fishing}},
	{Name: "other", Activities: []Activity{Clothing, Haircut, Tomb, Headstone, Purification, Storage, Litigation, Heights}},
}

// AllActivities flattens the catalogue.
func AllActivities() []Activity {
	var out []Activity
	for _, c := range Categories {
		out = append(out, c.Activities...)
	}
	return out
}

type phaseTable struct {
	favorable   []Activity
	unfavorable []Activity
}

// phaseTables maps each classification to its fixed favorable and
// unfavorable activity lists.
var phaseTables = [PhaseCount]phaseTable{
	Establish: {
		favorable:   []Activity{Ceremonies, Prayers, Travel, Digging, Friends, Beams, Consecration, Livestock},
		unfavorable: []Activity{Opening, Burial, Wedding, Relocation},
	},
	Remove: {
		favorable:   []Activity{Purification, Bathing, Doctor, Treatment, Cleaning, Medicine},
		unfavorable: []Activity{Wedding, LongJourney, Opening, Trading},
	},
	Full: {
		favorable:   []Activity{Prayers, Wedding, MovingHouse, Opening, Finances, Proposal, Relocation, Property},
		unfavorable: []Activity{Digging, Medicine, GroundBreaking},
	},
	Balance: {
		favorable:   []Activity{Renovation, Digging, BedInstallation, Clothing, Haircut},
		unfavorable: []Activity{Prayers, Offspring, Wedding, Opening},
	},
	Stable: {
		favorable:   []Activity{Wedding, Opening, Trading, Contract, Engagement, Proposal, Friends, Property},
		unfavorable: []Activity{Litigation, LongJourney, Digging},
	},
	Initiate: {
		favorable:   []Activity{Ceremonies, Hunting, Fishing, Livestock, Herding},
		unfavorable: []Activity{Opening, Trading, Wedding, Relocation},
	},
	Destruction: {
		favorable:   []Activity{Treatment, Doctor, GroundBreaking, Purification},
		unfavorable: []Activity{Wedding, Opening, Trading, Prayers, MovingHouse, Relocation},
	},
	Danger: {
		favorable:   []Activity{BedInstallation, Ceremonies, Prayers, Bathing, Fasting},
		unfavorable: []Activity{Heights, LongJourney, Travel, Digging, Renovation},
	},
	Success: {
		favorable:   []Activity{Opening, Wedding, MovingHouse, Finances, Contract, Trading, Property, Relocation, Friends},
		unfavorable: []Activity{Litigation, Digging, Burial},
	},
	Receive: {
		favorable:   []Activity{Finances, MovingHouse, Storage, Livestock, Herding, Planting},
		unfavorable: []Activity{Opening, Digging, Travel, Wedding},
	},
	Open: {
		favorable:   []Activity{Opening, Digging, Consecration, Wedding, Travel, Relocation, MovingHouse, Trading, Contract, Friends},
		unfavorable: []Activity{Burial, Doctor},
	},
	Close: {
		favorable:   []Activity{Burial, Storage, Tomb, Exhumation},
		unfavorable: []Activity{Opening, Travel, Wedding, Digging, Trading, Relocation},
	},
}
