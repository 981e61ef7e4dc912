package presentation

const (
	IDParam    = "id"
	KindParam  = "kind"
	MoodParam  = "mood"
	QueryParam = "q"
	LimitParam = "limit"

	TitleField   = "title"
	CaptionField = "caption"
	MoodField    = "mood"
	KindField    = "kind"
	TextField    = "text"
	FileField    = "file"
)
