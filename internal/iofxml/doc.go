// Package iofxml loads IOF datastandard v3 result lists into the results model.
//
// Only the parts of a ResultList needed for scoring are read:
//
//	ResultList
//	  Event/Name
//	  ClassResult*
//	    Class/Name
//	    PersonResult*
//	      Person (@sex, BirthDate, Name/Given, Name/Family)
//	      Organisation/Name
//	      Result? (Status, Score, Time, SplitTime*/ControlCode)
//
// Structure is checked once, at load time. Classes without a name and split
// times without a control code are skipped; every other defect is returned
// as a typed error from internal/results.
//
// Documents declaring a non-UTF-8 encoding (ISO-8859-1 and windows-1252 are
// common in SI timing exports) are transcoded through golang.org/x/text.
package iofxml
