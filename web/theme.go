package web

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Sky and scenery
	SkyTop      string
	SkyBottom   string
	CloudColor  string
	GroundColor string
	GrassColor  string

	// Player ball
	BallColor     string
	BallLineColor string
	BallGlow      string

	// Hoops
	RimColor       string
	RimShadowColor string
	NetColor       string
	BackboardColor string

	// Effects
	ParticleColors []string
	FlashColor     string
	PopupColors    []string // Fades through these as the popup ages
	LevelUpColor   string
	WarningColor   string

	// UI/HUD colors
	ScoreColor     string
	TextColor      string
	TextShadow     string
	PanelColor     string
	SuccessColor   string
	FailureColor   string
	SelectedColor  string
	UnselectedText string

	// Fonts
	TitleFont  string
	HUDFont    string
	PopupFont  string
	SmallFont  string
	BannerFont string

	// Line widths
	RimLineWidth  float64
	NetLineWidth  float64
	BallLineWidth float64

	// Shadow/glow blur values
	DefaultShadowBlur float64
	BallShadowBlur    float64
}{
	SkyTop:      "#87CEEB",
	SkyBottom:   "#E0F6FF",
	CloudColor:  "rgba(255, 255, 255, 0.8)",
	GroundColor: "#27ae60",
	GrassColor:  "#2ecc71",

	BallColor:     "#e67e22",
	BallLineColor: "#7f3c0a",
	BallGlow:      "#f1c40f",

	RimColor:       "#e74c3c",
	RimShadowColor: "#c0392b",
	NetColor:       "#ffffff",
	BackboardColor: "rgba(255, 255, 255, 0.85)",

	ParticleColors: []string{"#f1c40f", "#e74c3c", "#ffffff", "#3498db"},
	FlashColor:     "255, 255, 255",
	PopupColors:    []string{"#f1c40f", "#e74c3c", "#ffffff"},
	LevelUpColor:   "#f1c40f",
	WarningColor:   "255, 0, 0",

	ScoreColor:     "#ffffff",
	TextColor:      "#ffffff",
	TextShadow:     "rgba(0, 0, 0, 0.5)",
	PanelColor:     "rgba(0, 0, 0, 0.6)",
	SuccessColor:   "#2ecc71",
	FailureColor:   "#e74c3c",
	SelectedColor:  "#f1c40f",
	UnselectedText: "#bdc3c7",

	TitleFont:  "bold 48px Arial",
	HUDFont:    "bold 24px Arial",
	PopupFont:  "Arial",
	SmallFont:  "16px Arial",
	BannerFont: "bold 36px Arial",

	RimLineWidth:  6.0,
	NetLineWidth:  2.0,
	BallLineWidth: 2.0,

	DefaultShadowBlur: 4.0,
	BallShadowBlur:    8.0,
}
