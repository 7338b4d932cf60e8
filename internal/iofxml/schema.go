package iofxml

import "encoding/xml"

// Namespace is the IOF datastandard v3 namespace every element lives in.
const Namespace = "http://www.orienteering.org/datastandard/3.0"

// Element types mirror the subset of the IOF v3 schema the loader reads.
// Local names only; the namespace is checked on the root element.

type xmlResultList struct {
	XMLName      xml.Name         `xml:"ResultList"`
	Event        *xmlEvent        `xml:"Event"`
	ClassResults []xmlClassResult `xml:"ClassResult"`
}

type xmlEvent struct {
	Name string `xml:"Name"`
}

type xmlClassResult struct {
	Class         xmlClass          `xml:"Class"`
	PersonResults []xmlPersonResult `xml:"PersonResult"`
}

type xmlClass struct {
	Name string `xml:"Name"`
}

type xmlPersonResult struct {
	Person       xmlPerson       `xml:"Person"`
	Organisation xmlOrganisation `xml:"Organisation"`
	// Multi-race events may repeat Result; the first one is scored.
	Results []xmlResult `xml:"Result"`
}

type xmlPerson struct {
	Sex       string      `xml:"sex,attr"`
	BirthDate string      `xml:"BirthDate"`
	Name      xmlNameTree `xml:"Name"`
}

type xmlNameTree struct {
	Given  string `xml:"Given"`
	Family string `xml:"Family"`
}

type xmlOrganisation struct {
	Name string `xml:"Name"`
}

type xmlResult struct {
	Status     string         `xml:"Status"`
	Scores     []string       `xml:"Score"`
	Time       string         `xml:"Time"`
	SplitTimes []xmlSplitTime `xml:"SplitTime"`
}

type xmlSplitTime struct {
	ControlCode string `xml:"ControlCode"`
}
