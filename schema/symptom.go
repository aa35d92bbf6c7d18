package schema

const (
	SymptomCollection = "symptom"
)

type SymptomCategory string

const (
	CategoryRespiratory SymptomCategory = "respiratory"
	CategoryDigestive   SymptomCategory = "digestive"
	CategoryGeneral     SymptomCategory = "general"
	CategoryOther       SymptomCategory = "other"
)

type SymptomSource string

const (
	OfficialSymptom   SymptomSource = "official"
	CustomizedSymptom SymptomSource = "customized"
)

func (c SymptomCategory) Valid() bool {
	switch c {
	case CategoryRespiratory, CategoryDigestive, CategoryGeneral, CategoryOther:
		return true
	}
	return false
}

type Symptom struct {
	ID       string          `json:"id" bson:"_id"`
	Name     string          `json:"name" bson:"name"`
	Category SymptomCategory `json:"category" bson:"category"`
	Source   SymptomSource   `json:"-" bson:"source"`
}

// OfficialSymptoms is the catalog offered to students on the report form.
var OfficialSymptoms = []Symptom{
	{ID: "fever", Name: "Fever", Category: CategoryGeneral, Source: OfficialSymptom},
	{ID: "cough", Name: "Cough", Category: CategoryRespiratory, Source: OfficialSymptom},
	{ID: "sore-throat", Name: "Sore Throat", Category: CategoryRespiratory, Source: OfficialSymptom},
	{ID: "headache", Name: "Headache", Category: CategoryGeneral, Source: OfficialSymptom},
	{ID: "fatigue", Name: "Fatigue", Category: CategoryGeneral, Source: OfficialSymptom},
	{ID: "runny-nose", Name: "Runny Nose", Category: CategoryRespiratory, Source: OfficialSymptom},
	{ID: "nausea", Name: "Nausea", Category: CategoryDigestive, Source: OfficialSymptom},
	{ID: "vomiting", Name: "Vomiting", Category: CategoryDigestive, Source: OfficialSymptom},
	{ID: "diarrhea", Name: "Diarrhea", Category: CategoryDigestive, Source: OfficialSymptom},
	{ID: "body-ache", Name: "Body Ache", Category: CategoryGeneral, Source: OfficialSymptom},
	{ID: "chills", Name: "Chills", Category: CategoryGeneral, Source: OfficialSymptom},
	{ID: "loss-of-taste", Name: "Loss of Taste/Smell", Category: CategoryOther, Source: OfficialSymptom},
}

// OfficialSymptomIDs is a lookup of the symptom IDs above.
var OfficialSymptomIDs = map[string]bool{}

func init() {
	for _, s := range OfficialSymptoms {
		OfficialSymptomIDs[s.ID] = true
	}
}
