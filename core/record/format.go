package record

// Format identifies the textual layout a record was parsed from.
type Format int

const (
	GenBank Format = iota + 1
	EMBL
	FASTA
	Raw
)

func (f Format) String() string {
	switch f {
	case GenBank:
		return "GenBank"
	case EMBL:
		return "EMBL"
	case FASTA:
		return "FASTA"
	case Raw:
		return "raw"
	}
	return "unknown"
}

// Warning is a non-fatal composition diagnostic attached to a parse.
type Warning int

const (
	NoWarning Warning = iota
	PossiblyAminoAcid
	UnknownNucleotide
)

func (w Warning) String() string {
	switch w {
	case PossiblyAminoAcid:
		return "possibly amino acid sequence"
	case UnknownNucleotide:
		return "unknown nucleotide symbols"
	}
	return ""
}
