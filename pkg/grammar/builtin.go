package grammar

// Standard widget kinds.
const (
	KindButton      = "Button"
	KindTextField   = "TextField"
	KindCheckbox    = "Checkbox"
	KindRadioButton = "RadioButton"
	KindDropdown    = "Dropdown"
	KindLabel       = "Label"
	KindLink        = "Link"
	KindImage       = "Image"
	KindIcon        = "Icon"
	KindModal       = "Modal"
	KindTooltip     = "Tooltip"
	KindCard        = "Card"
	KindTable       = "Table"
	KindList        = "List"
	KindSpinner     = "Spinner"
	KindAlert       = "Alert"
	KindPagination  = "Pagination"
	KindTab         = "Tab"
	KindAccordion   = "Accordion"
	KindDatePicker  = "DatePicker"
	KindFileInput   = "FileInput"
	KindTextarea    = "Textarea"
	KindNavbar      = "Navbar"
	KindFooter      = "Footer"
	KindSidebar     = "Sidebar"
	KindBadge       = "Badge"
	KindToast       = "Toast"
	KindSlider      = "Slider"
	KindProgressBar = "ProgressBar"
	KindGrid        = "Grid"
	KindInputGroup  = "InputGroup"
	KindForm        = "Form"
	KindCarousel    = "Carousel"
)

func str(name string) Field     { return Field{Name: name, Type: FieldString} }
func boolean(name string) Field { return Field{Name: name, Type: FieldBoolean} }
func integer(name string) Field { return Field{Name: name, Type: FieldInteger} }
func list(name string) Field    { return Field{Name: name, Type: FieldStringList} }
func pairs(name string) Field   { return Field{Name: name, Type: FieldPairList} }
func rows(name string) Field    { return Field{Name: name, Type: FieldRowMatrix} }

// BuiltinEntries returns a fresh copy of the standard kind table in its
// authoritative order.
func BuiltinEntries() []Entry {
	return []Entry{
		{
			Kind:      KindButton,
			Fields:    []Field{str("text"), str("width"), str("height"), str("color")},
			Resizable: true,
			Identity:  Identity{Field: "text"},
		},
		{
			Kind:      KindTextField,
			Fields:    []Field{str("placeholder"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "placeholder"},
		},
		{
			Kind:      KindCheckbox,
			Fields:    []Field{str("label"), boolean("checked"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "label"},
		},
		{
			Kind:      KindRadioButton,
			Fields:    []Field{str("label"), boolean("checked"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "label"},
		},
		{
			Kind:      KindDropdown,
			Fields:    []Field{list("options"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "options", Raw: true},
		},
		{
			Kind:      KindLabel,
			Fields:    []Field{str("text"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "text"},
		},
		{Kind: KindLink, Fields: []Field{str("text"), str("url")}},
		{Kind: KindImage, Fields: []Field{str("src"), str("alt"), str("width"), str("height")}},
		{Kind: KindIcon, Fields: []Field{str("name"), str("color"), str("size")}},
		{Kind: KindModal, Fields: []Field{str("title"), str("content")}},
		{Kind: KindTooltip, Fields: []Field{str("text"), str("tooltip")}},
		{Kind: KindCard, Fields: []Field{str("title"), str("content")}},
		{Kind: KindTable, Fields: []Field{list("headers"), rows("rows")}},
		{Kind: KindList, Fields: []Field{list("items"), boolean("ordered")}},
		{Kind: KindSpinner, Fields: []Field{str("size")}},
		{
			Kind:        KindAlert,
			Fields:      []Field{str("message"), str("type")},
			Description: "type is one of success, danger, warning, info; anything else renders neutral",
		},
		{Kind: KindPagination, Fields: []Field{integer("pages"), integer("active")}},
		{Kind: KindTab, Fields: []Field{list("labels"), integer("active")}},
		{Kind: KindAccordion, Fields: []Field{str("title"), str("content")}},
		{Kind: KindDatePicker, Fields: []Field{str("label")}},
		{Kind: KindFileInput, Fields: []Field{str("label")}},
		{Kind: KindTextarea, Fields: []Field{str("label")}},
		{Kind: KindNavbar, Fields: []Field{str("title"), pairs("links")}},
		{Kind: KindFooter, Fields: []Field{str("text")}},
		{Kind: KindSidebar, Fields: []Field{str("title"), pairs("links")}},
		{Kind: KindBadge, Fields: []Field{str("text"), str("color")}},
		{Kind: KindToast, Fields: []Field{str("message"), integer("duration")}},
		{
			Kind:      KindSlider,
			Fields:    []Field{str("min"), str("max"), str("step"), str("value"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "value", Prefix: "Slider "},
		},
		{
			Kind:      KindProgressBar,
			Fields:    []Field{str("value"), str("max"), str("width"), str("height")},
			Resizable: true,
			Identity:  Identity{Field: "value", Prefix: "ProgressBar "},
		},
		{Kind: KindGrid, Fields: []Field{str("columns"), str("rows")}},
		{Kind: KindInputGroup, Fields: []Field{str("label"), list("inputs")}},
		{Kind: KindForm, Fields: []Field{list("fields")}},
		{Kind: KindCarousel, Fields: []Field{list("images"), str("interval")}},
	}
}
