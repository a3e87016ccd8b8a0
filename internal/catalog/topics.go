package catalog

// Topic is a single quiz topic within a subject.
type Topic struct {
	Name string
	Icon string
}

// Topics returns the topic catalog for the subject.
// The returned slice must not be mutated.
func (s Subject) Topics() []Topic {
	return subjectTopics[s]
}

var subjectTopics = map[Subject][]Topic{
	SubjectBotany: {
		{Name: "Algae (Phycology)", Icon: "~"},
		{Name: "Angiosperms", Icon: "*"},
		{Name: "Bioinformatics", Icon: "#"},
		{Name: "Biochemistry", Icon: "+"},
		{Name: "Bryophytes", Icon: "^"},
		{Name: "Economic Botany", Icon: "$"},
		{Name: "Ecology & Evolution", Icon: "o"},
		{Name: "Ethnobotany", Icon: "&"},
		{Name: "Fungi (Mycology)", Icon: "@"},
		{Name: "Genetics", Icon: "%"},
		{Name: "Gymnosperms", Icon: "^"},
		{Name: "Microbiology", Icon: "."},
		{Name: "Molecular Biology", Icon: "+"},
		{Name: "Palynology", Icon: "'"},
		{Name: "Plant Anatomy", Icon: "|"},
		{Name: "Plant Biotechnology", Icon: "="},
		{Name: "Plant Pathology", Icon: "!"},
		{Name: "Plant Physiology", Icon: "~"},
		{Name: "Plant Taxonomy", Icon: ":"},
		{Name: "Pteridophytes", Icon: "^"},
	},
	SubjectPhysics: {
		{Name: "Quantum Mechanics", Icon: "*"},
		{Name: "Thermodynamics", Icon: "+"},
		{Name: "Optics & Light", Icon: "o"},
		{Name: "Nuclear Physics", Icon: "@"},
		{Name: "Electromagnetism", Icon: "~"},
		{Name: "Classical Mechanics", Icon: "="},
		{Name: "Astrophysics", Icon: "."},
		{Name: "Relativity", Icon: "%"},
	},
	SubjectChemistry: {
		{Name: "Organic Chemistry", Icon: "+"},
		{Name: "Inorganic Chemistry", Icon: "*"},
		{Name: "Physical Chemistry", Icon: "~"},
		{Name: "Periodic Table", Icon: "#"},
		{Name: "Chemical Bonding", Icon: "="},
		{Name: "Biochemistry", Icon: "%"},
		{Name: "Electrochemistry", Icon: "!"},
		{Name: "Analytical Chemistry", Icon: "o"},
	},
	SubjectZoology: {
		{Name: "Animal Physiology", Icon: "+"},
		{Name: "Evolutionary Biology", Icon: "~"},
		{Name: "Entomology (Insects)", Icon: "*"},
		{Name: "Marine Biology", Icon: "o"},
		{Name: "Vertebrates", Icon: "|"},
		{Name: "Invertebrates", Icon: "."},
		{Name: "Ethology (Behavior)", Icon: "@"},
		{Name: "Genetics", Icon: "%"},
	},
}

// DepthLevels are the curriculum depths a quiz round can target.
// One is chosen pseudo-randomly per round to vary difficulty.
var DepthLevels = []string{
	"HS Level (NEET/NCERT)",
	"BSc Level (Core Academic)",
	"MSc Level (Analytical/Research)",
}

// FocusAreas returns the rotation list of sub-focus angles for the subject.
// A generated round is steered toward one of these to reduce repetition
// across rounds on the same topic.
func (s Subject) FocusAreas() []string {
	return subjectFocusAreas[s]
}

var subjectFocusAreas = map[Subject][]string{
	SubjectBotany: {
		"molecular mechanisms & DNA",
		"structural morphology & anatomy",
		"evolutionary phylogeny & history",
		"biochemical pathways & photosynthesis",
		"economic botany & industry use",
		"ecological interactions & environment",
		"advanced taxonomic classification",
		"plant pathology & defense mechanisms",
	},
	SubjectPhysics: {
		"mathematical formulation & derivations",
		"experimental methods & instrumentation",
		"historical experiments & discoveries",
		"conceptual paradoxes & thought experiments",
		"applied engineering & technology",
		"unit analysis & order-of-magnitude estimates",
	},
	SubjectChemistry: {
		"reaction mechanisms & intermediates",
		"thermodynamic & kinetic analysis",
		"laboratory techniques & spectroscopy",
		"industrial processes & applications",
		"periodic trends & electronic structure",
		"stereochemistry & molecular geometry",
	},
	SubjectZoology: {
		"comparative anatomy & organ systems",
		"evolutionary relationships & cladistics",
		"behavioral ecology & adaptation",
		"developmental biology & life cycles",
		"physiology & homeostasis",
		"biodiversity & conservation",
	},
}
