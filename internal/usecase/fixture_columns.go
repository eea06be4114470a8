package usecase

// Headers of the match-event workbook. One row is either a match event or,
// when the minute is empty, the home half of a goalkeeper pair whose away
// half is the next row.
const (
	fixtureColDate          = "Tarih"
	fixtureColWeek          = "Hafta"
	fixtureColHomeFormation = "EV Taktik"
	fixtureColHomeName      = "EV"
	fixtureColHomeXG        = "EV xG"
	fixtureColHomeScore     = "EV Skor"
	fixtureColAwayScore     = "DEP Skor"
	fixtureColAwayXG        = "DEP xG"
	fixtureColAwayFormation = "DEP Taktik"
	fixtureColAwayName      = "DEP"
	fixtureColNotes         = "Takım/Dakika/Olay Notları"
	fixtureColMinute        = "Dakika"
	fixtureColTeam          = "Takım"
	fixtureColPlayerFirst   = "Oyuncu Ad"
	fixtureColPlayerLast    = "Oyuncu Soyadı"
	fixtureColPlayerPos     = "Oyuncu Pozisyonu"
	fixtureColPlayerRating  = "Oyuncu Maç Puanı"
	fixtureColShotArea      = "Şut Bölgesi"
	fixtureColShotType      = "Şut Tipi"
	fixtureColLeadUp        = "Pozisyon Gelişimi"
	fixtureColXG            = "xG Oranı"
	fixtureColXGOT          = "xGOT Oranı"
	// Goalkeeper rows reuse this column for saves.
	fixtureColBigChance   = "Büyük Şans"
	fixtureColOutcome     = "Sonuç"
	fixtureColScoreAtShot = "Skor"
	fixtureColAssistFirst = "Asist Yapan Oyuncu Adı"
	fixtureColAssistLast  = "Asist Yapan Oyuncu Soyadı"
)

// Headers of the squad workbook.
const (
	squadColCountry         = "Ülke"
	squadColLeague          = "Lig"
	squadColSeason          = "Sezon"
	squadColClub            = "Takım"
	squadColShirtNumber     = "FN"
	squadColFirstName       = "Adı"
	squadColLastName        = "Soyadı"
	squadColDisplayName     = "Görünen Adı"
	squadColBirthPlace      = "Doğum Yeri"
	squadColNationality     = "Uyruk"
	squadColPosition        = "Pozisyon"
	squadColTransfermarktID = "Transfermarkt ID"
	squadColMarketValue     = "M.P.D."
	squadColAge             = "Yaş"
	squadColStatus          = "Durumu"
	squadColContractExpiry  = "Sözleşme Sonu"
	squadColDateOfBirth     = "Doğum tarihi"
	squadColTransferDate    = "Transfer Tarihi"
	squadColPreviousClub    = "Transfer Olduğu Takım"
	squadColPrevMarketValue = "Piyasa Değeri"
	squadColHeight          = "Boy"
	squadColWeight          = "Kilo"
	squadColTransferFee     = "Transfer Bedeli"
)
