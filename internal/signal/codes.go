package signal

import "fmt"

// Canonical signal set. The codes and the Dutch message texts are a stable
// external contract consumed by the front end and by downloaded reports.

// APIKeyRequired (E000): external rewriting is enabled but no API key is
// available from either the request or the configuration.
func APIKeyRequired() Signal {
	return Error("E000", "API-key is vereist om verder te gaan.")
}

// FileTooLarge (E001): upload exceeds the size limit.
func FileTooLarge() Signal {
	return Error("E001", "Bestand te groot (>10MB).")
}

// UnreadableFile (E002): the file could not be read or has an unsupported type.
func UnreadableFile() Signal {
	return Error("E002", "Onleesbaar bestand. Upload een ander bestand.")
}

// TooLittleExtractable (E003): extraction yielded too little usable text,
// typically a scanned PDF.
func TooLittleExtractable() Signal {
	return Error("E003", "Te weinig bruikbare brontekst. Upload een ander bestand.")
}

// TextTooShort (E004): the normalized source is below the minimum length.
func TextTooShort() Signal {
	return Error("E004", "Te weinig brontekst om nieuwsbericht te genereren.")
}

// ProcessTimeout (E005): the whole-request deadline elapsed before the run
// finished. Reported distinctly so it is never conflated with extraction or
// validation failures.
func ProcessTimeout() Signal {
	return Error("E005", "Verwerking duurde te lang en is afgebroken. Probeer het opnieuw.")
}

// FiveWMinimumNotMet (E006): two or more of the five gate dimensions are absent.
func FiveWMinimumNotMet() Signal {
	return Error("E006", "Brontekst voldoet niet aan minimumeisen: 5W’s+H.")
}

// MultipleReleases (E007): the document contains more than one press release.
func MultipleReleases() Signal {
	return Error("E007", "Meerdere persberichten in één document gevonden. Lever per document één persbericht aan dat door deze tool wordt verwerkt.")
}

// MissingWhy (W001).
func MissingWhy() Signal { return Warning("W001", "Waarom ontbreekt.") }

// MissingHow (W002).
func MissingHow() Signal { return Warning("W002", "Hoe ontbreekt.") }

// StrongClaim (W004): absolute or superlative marketing language present.
func StrongClaim() Signal {
	return Warning("W004", "Sterke claim aangetroffen. Controleer neutraliteit.")
}

// HeadlineTooShort (W005).
func HeadlineTooShort() Signal {
	return Warning("W005", "Kop is korter dan 100 tekens.")
}

// HeadlineTooLong (W006).
func HeadlineTooLong() Signal {
	return Warning("W006", "Kop is langer dan 150 tekens.")
}

// TotalTooShort (W007): intro+body falls below the target band.
func TotalTooShort(class string, total, low, high int) Signal {
	return Warning("W007", fmt.Sprintf("Tekst mogelijk te kort voor %s: %d tekens (doel %d–%d).", class, total, low, high))
}

// TotalTooLong (W007): intro+body exceeds the soft ceiling above the band.
func TotalTooLong(class string, total, low, high, ceiling int) Signal {
	return Warning("W007", fmt.Sprintf("Tekst mogelijk te lang voor %s: %d tekens (doel %d–%d, max %d).", class, total, low, high, ceiling))
}

// RelativeTime (W008): relative day adverbs need external verification.
func RelativeTime() Signal {
	return Warning("W008", "Extern verifiëren: tijdsaanduiding is relatief (bijv. gisteren/morgen). Maak dit absoluut.")
}

// ContactInfo (W009): a trailing contact block was found.
func ContactInfo() Signal {
	return Warning("W009", "Contactinformatie gevonden. Neem dit niet over in publicatie; zet in apart contactblok.")
}

// RewriteFailed (W010): the external rewrite attempt failed and the
// deterministic fallback was used instead.
func RewriteFailed() Signal {
	return Warning("W010", "Technisch probleem bij herschrijven. Probeer opnieuw of gebruik ‘Document bewerken’.")
}

// MissingWho (W011).
func MissingWho() Signal { return Warning("W011", "Wie ontbreekt of is onduidelijk.") }

// MissingWhat (W012).
func MissingWhat() Signal { return Warning("W012", "Wat ontbreekt of is onduidelijk.") }

// MissingWhere (W013).
func MissingWhere() Signal { return Warning("W013", "Waar ontbreekt of is onduidelijk.") }

// MissingWhen (W014).
func MissingWhen() Signal { return Warning("W014", "Wanneer ontbreekt of is onduidelijk.") }

// PossibleSecondRelease (W015): a second section resembles a press release
// but not strongly enough for a hard stop.
func PossibleSecondRelease() Signal {
	return Warning("W015", "Mogelijk tweede persbericht in document gevonden. Controleer of het document echt maar één persbericht bevat.")
}
