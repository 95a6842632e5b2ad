// Package syllabus holds the static class/subject/chapter table the tutoring
// endpoints validate against.
package syllabus

// PartsPerChapter is how many lesson parts each chapter is split into.
const PartsPerChapter = 5

// Table maps class level -> subject -> ordered chapter list.
var Table = map[string]map[string][]string{
	"6": {
		"Maths":   {"Number System Basics", "Fractions and Decimals", "Ratio and Proportion", "Basic Geometry", "Mensuration"},
		"Science": {"Food: Where Does It Come From?", "Components of Food", "Separation of Substances", "Sorting Materials", "Motion and Measurement of Distances"},
	},
	"7": {
		"Maths":   {"Integers", "Fractions and Decimals", "Simple Equations", "Lines and Angles", "Perimeter and Area"},
		"Science": {"Nutrition in Plants", "Nutrition in Animals", "Heat", "Acids, Bases and Salts", "Physical and Chemical Changes"},
	},
	"8": {
		"Maths":   {"Rational Numbers", "Squares and Square Roots", "Cubes and Cube Roots", "Linear Equations in One Variable", "Mensuration"},
		"Science": {"Crop Production and Management", "Materials: Metals and Non-metals", "Force and Pressure", "Friction", "Sound", "Light"},
	},
	"9": {
		"Physics":   {"Motion", "Force and Laws of Motion", "Gravitation", "Work and Energy", "Sound"},
		"Chemistry": {"Matter in Our Surroundings", "Is Matter Around Us Pure", "Atoms and Molecules", "Structure of the Atom"},
		"Biology":   {"The Fundamental Unit of Life", "Tissues", "Diversity in Living Organisms", "Why Do We Fall Ill", "Natural Resources"},
		"Maths":     {"Number Systems", "Polynomials", "Coordinate Geometry", "Linear Equations in Two Variables", "Triangles", "Statistics", "Probability"},
	},
	"10": {
		"Physics":   {"Light - Reflection and Refraction", "Human Eye and Colourful World", "Electricity", "Magnetic Effects of Electric Current", "Sources of Energy"},
		"Chemistry": {"Chemical Reactions and Equations", "Acids, Bases and Salts", "Metals and Non-metals", "Carbon and its Compounds", "Periodic Classification of Elements"},
		"Biology":   {"Life Processes", "Control and Coordination", "How do Organisms Reproduce?", "Heredity and Evolution", "Our Environment"},
		"Maths":     {"Real Numbers", "Polynomials", "Pair of Linear Equations in Two Variables", "Quadratic Equations", "Trigonometry Basics", "Statistics", "Probability"},
	},
	"11": {
		"Physics":   {"Units and Measurements", "Motion in a Straight Line", "Laws of Motion", "Work, Energy and Power", "Waves"},
		"Chemistry": {"Some Basic Concepts of Chemistry", "Structure of Atom", "Chemical Bonding", "Thermodynamics", "Equilibrium"},
		"Biology":   {"The Living World", "Cell: The Unit of Life", "Biomolecules", "Cell Cycle and Cell Division", "Plant Physiology Basics"},
		"Maths":     {"Sets", "Relations and Functions", "Complex Numbers", "Permutations and Combinations", "Limits and Derivatives"},
	},
	"12": {
		"Physics":   {"Electric Charges and Fields", "Current Electricity", "Moving Charges and Magnetism", "EM Induction and AC", "Ray and Wave Optics"},
		"Chemistry": {"The Solid State", "Solutions", "Electrochemistry", "Chemical Kinetics", "Surface Chemistry"},
		"Biology":   {"Reproduction in Organisms", "Human Reproduction", "Principles of Inheritance and Variation", "Molecular Basis of Inheritance", "Evolution"},
		"Maths":     {"Matrices", "Determinants", "Continuity and Differentiability", "Integrals", "Differential Equations"},
	},
}

// HasChapter reports whether the chapter exists for the class and subject.
func HasChapter(classLevel, subject, chapter string) bool {
	subjects, ok := Table[classLevel]
	if !ok {
		return false
	}
	chapters, ok := subjects[subject]
	if !ok {
		return false
	}
	for _, c := range chapters {
		if c == chapter {
			return true
		}
	}
	return false
}

// ValidPart reports whether part is a valid 1-based chapter part.
func ValidPart(part int) bool {
	return part >= 1 && part <= PartsPerChapter
}
