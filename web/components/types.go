package components

// FormDefaults pre-fills the generator form on the home page.
type FormDefaults struct {
	URL       string
	Size      int
	MaxSize   int
	QuietZone int
	LogoScale float64
	LogoPlate bool
	LogoPad   float64
	Verify    bool
}
