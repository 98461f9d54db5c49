package database

import (
	"fmt"
	"slices"

	"council-portal-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCategories = []models.ServiceCategory{
	{Name: "Finance", Color: "bg-brand-blue", Accent: "text-brand-blue"},
	{Name: "Utilities", Color: "bg-brand-blue", Accent: "text-brand-blue"},
	{Name: "Commercial", Color: "bg-brand-green", Accent: "text-brand-green"},
	{Name: "Safety", Color: "bg-brand-red", Accent: "text-brand-red"},
	{Name: "Personal", Color: "bg-brand-red", Accent: "text-brand-red"},
	{Name: "General", Color: "bg-brand-yellow", Accent: "text-brand-yellow"},
	{Name: "Construction", Color: "bg-brand-orange", Accent: "text-brand-orange"},
	{Name: "Sanitation", Color: "bg-brand-orange", Accent: "text-brand-orange"},
	{Name: "Support", Color: "bg-brand-red", Accent: "text-brand-red"},
}

type seedService struct {
	models.ServiceRecord
	docs []string
}

var seedServices = []seedService{
	{models.ServiceRecord{ID: "s1", Title: "Property Tax", Description: "Pay property tax, view bills, and get receipts via DULB Portal.", Icon: "Home", Link: "https://property.ulbharyana.gov.in/", Timeframe: "Instant", Fees: "As per Assessment", IsExternal: true, ButtonLabel: "Pay Tax", CategoryName: "Finance"}, []string{"Property ID", "Mobile Number"}},
	{models.ServiceRecord{ID: "s4", Title: "Water & Sewerage", Description: "Apply for new connections and pay bills via ULB Portal.", Icon: "Droplets", Link: "https://online.ulbharyana.gov.in/", Timeframe: "15 Days", Fees: "Connection Charges", IsExternal: true, ButtonLabel: "ULB Portal", CategoryName: "Utilities"}, []string{"ID Proof", "Property Tax Receipt"}},
	{models.ServiceRecord{ID: "s5", Title: "Trade License", Description: "Apply for new trade license or renew existing ones.", Icon: "Receipt", Link: "https://online.ulbharyana.gov.in/", Timeframe: "15 Days", Fees: "Category Based", IsExternal: true, ButtonLabel: "ULB Portal", CategoryName: "Commercial"}, []string{"Rent Agreement", "ID Proof", "Fire NOC"}},
	{models.ServiceRecord{ID: "s7", Title: "Fire NOC", Description: "Apply for provisional or final Fire No Objection Certificate.", Icon: "Flame", Link: "https://fire.ulbharyana.gov.in/", Timeframe: "15 Days", Fees: "Area Based", IsExternal: true, ButtonLabel: "Fire Portal", CategoryName: "Safety"}, []string{"Building Plan", "Owner ID"}},
	{models.ServiceRecord{ID: "s8", Title: "Marriage Registration", Description: "Register marriage and obtain legal certificate.", Icon: "Heart", Link: "https://shaadi.edisha.gov.in/", Timeframe: "Working Days", Fees: "₹500+", IsExternal: true, ButtonLabel: "Register", CategoryName: "Personal"}, []string{"Joint Photo", "ID Proofs", "Wedding Card"}},
	{models.ServiceRecord{ID: "s6", Title: "Birth & Death", Description: "Issues official certificates and records.", Icon: "Baby", Link: "https://crsorgi.gov.in/web/index.php/auth/login", Timeframe: "14 Days", Fees: "₹50+", IsExternal: true, ButtonLabel: "CRS Portal", CategoryName: "General"}, []string{"Discharge Slip", "ID Proofs"}},
	{models.ServiceRecord{ID: "s3", Title: "Building Plan", Description: "Online Building Plan Approval System (OBPAS).", Icon: "Building2", Link: "https://haryanabpas.gov.in/BPASP/", Timeframe: "30 Days", Fees: "Per Sq. Yd.", IsExternal: true, ButtonLabel: "Access OBPAS", CategoryName: "Construction"}, []string{"Architectural Drawings", "Ownership Proof"}},
	{models.ServiceRecord{ID: "s15", Title: "Septic Tank Cleaning", Description: "Book municipal suction machines for septic tank cleaning.", Icon: "Wrench", Link: "https://online.ulbharyana.gov.in/", Timeframe: "24-48 Hours", Fees: "Fixed Rate", IsExternal: true, ButtonLabel: "Book Now", CategoryName: "Sanitation"}, []string{"ID Proof", "Address"}},
	{models.ServiceRecord{ID: "s2", Title: "Grievance Redressal", Description: "File and track complaints about municipal services.", Icon: "AlertTriangle", Link: "https://grs.ulbharyana.gov.in/", Timeframe: "7 Days", Fees: "Nil", IsExternal: true, ButtonLabel: "File Complaint", CategoryName: "Support"}, []string{"Photo of Issue", "Location"}},
}

type seedDepartment struct {
	models.DepartmentRecord
	staff []string
	acts  []string
}

var seedDepartments = []seedDepartment{
	{
		models.DepartmentRecord{ID: "engineering", Name: "Engineering Wing", Icon: "HardHat", Description: "Oversees the design, construction, and maintenance of public infrastructure like roads, bridges, and water systems.", Incharge: "Sh. Pankaj Saini", Designation: "Executive Engineer"},
		[]string{"Narender Taneja (ME)", "Sunil Kumar (ME)", "Atul Kumar (JE)", "Shiv Kumar (JE)"},
		[]string{"Haryana Municipal Act, 1973", "National Building Code"},
	},
	{
		models.DepartmentRecord{ID: "sanitation", Name: "Sanitation Wing", Icon: "Trash2", Description: "Responsible for solid waste management, street cleaning, public health initiatives, and hygiene standards.", Incharge: "Sh. Avinash", Designation: "Chief Sanitary Inspector"},
		[]string{"Anand Parkash (SI)", "Sanjay Gujjar", "Vikash", "Parveen Kadian"},
		[]string{"Solid Waste Management Rules, 2016", "Swachh Bharat Mission Guidelines"},
	},
	{
		models.DepartmentRecord{ID: "tax", Name: "Taxation Wing", Icon: "Percent", Description: "Processes and manages property taxes, business licenses, and revenue collection.", Incharge: "Sh. Sachin Singhal", Designation: "Accounts Officer"},
		[]string{"Rajpal-I", "Rajpal-II", "Roshan Kumar", "Tejvir"},
		[]string{"Haryana Municipal Act (Taxation)", "Property Tax Rules"},
	},
	{
		models.DepartmentRecord{ID: "admin", Name: "Administration", Icon: "UserCheck", Description: "General administration, HR, and coordination of council meetings.", Incharge: "Sh. Devinder Kumar", Designation: "Executive Officer"},
		[]string{"General Staff"},
		[]string{"Haryana Municipal Act, 1973"},
	},
}

var seedOfficials = []models.Official{
	{ID: "d3", Name: "Sh. Swapnil Ravindra Patil, IAS", Designation: "Deputy Commissioner", Category: models.OfficialDistrict, Priority: 3},
	{ID: "d4", Name: "Dr. Sushil, HCS", Designation: "DMC Jhajjar", Category: models.OfficialDistrict, Priority: 4},
	{ID: "o1", Name: "Sh. Devinder Kumar", Designation: "Executive Officer", Phone: "+91-95820 75152", Email: "eo-jhajjar@ulbharyana.gov.in", Category: models.OfficialMunicipal, Priority: 10},
	{ID: "o2", Name: "Sh. Mohan Lal", Designation: "Secretary", Phone: "+91 98964 00750", Email: "eo-jhajjar@ulbharyana.gov.in", Category: models.OfficialMunicipal, Priority: 11},
	{ID: "o3", Name: "Sh. Pankaj Saini", Designation: "Municipal Engineer", Phone: "+91 98964 12345", Email: "me-jhajjar@ulbharyana.gov.in", Category: models.OfficialMunicipal, Priority: 12},
	{ID: "o4", Name: "Sh. Avinash", Designation: "Chief Sanitary Inspector", Phone: "+91 98123 45678", Email: "csi-jhajjar@ulbharyana.gov.in", Category: models.OfficialMunicipal, Priority: 13},
}

var seedNews = []models.NewsItem{
	{ID: "1", Title: "Notification: Extension of Interest Waiver Scheme", Date: "2026-02-15", Category: "Notification", Link: "#", Summary: "The government has extended the interest waiver scheme for property tax dues till 31st March."},
	{ID: "2", Title: "Public Notice: Survey for Street Vendors", Date: "2026-02-10", Category: "Circular", Link: "#", Summary: "All street vendors are requested to register for the SVANidhi scheme at the MC office."},
	{ID: "3", Title: "Auction notice for municipal shops in Sector 4", Date: "2026-01-25", Category: "Tender", Link: "#", Summary: "Open auction for 15 commercial sites on leasehold basis."},
	{ID: "4", Title: "Alert: Heavy Rain Forecast - Emergency Numbers", Date: "2026-02-20", Category: "Circular", Link: "#", Summary: "Citizens are advised to stay indoors. Contact control room 01251-252002 for emergencies."},
	{ID: "5", Title: "Health Camp: Free Checkup at Community Center", Date: "2026-02-18", Category: "Notification", Link: "#", Summary: "Free general health and eye checkup camp organized by MCJ on coming Sunday."},
}

var seedStats = []models.Stat{
	{Label: "Properties", Value: "34,971+", Icon: "Home", Color: "text-brand-blue", Priority: 1},
	{Label: "Connections", Value: "48,000+", Icon: "Droplets", Color: "text-brand-blue", Priority: 2},
	{Label: "Complaints Solved", Value: "98%", Icon: "AlertTriangle", Color: "text-brand-green", Priority: 3},
	{Label: "Street Lights", Value: "5,000+", Icon: "Landmark", Color: "text-brand-yellow", Priority: 4},
}

var seedDownloads = []models.DownloadItem{
	{ID: "dl1", Title: "Trade License Application Form", Category: "Forms", Size: "240 KB", Format: "PDF", Description: "Application for a new trade license or renewal."},
	{ID: "dl2", Title: "Building Bye-laws", Category: "Acts & Rules", Size: "1.8 MB", Format: "PDF", Description: "Haryana building code as applicable to the municipal area."},
}

var seedTenders = []models.Tender{
	{ID: "t1", Description: "Construction of storm water drain in Ward 7", ClosingDate: "2026-03-15", Status: models.TenderActive, IsNew: true},
	{ID: "t2", Description: "Annual contract for street light maintenance", ClosingDate: "2026-01-31", Status: models.TenderClosed},
}

// Seed inserts the portal's starter content. Rows whose primary key already
// exists are left untouched, so Seed can run on every deploy. It returns the
// number of rows inserted.
func Seed(db *gorm.DB) (int64, error) {
	var inserted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		insert := func(rows any) error {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
			if res.Error != nil {
				return res.Error
			}
			inserted += res.RowsAffected
			return nil
		}

		for _, rows := range []any{
			cloned(seedCategories),
			cloned(seedOfficials),
			cloned(seedNews),
			cloned(seedStats),
			cloned(seedDownloads),
			cloned(seedTenders),
		} {
			if err := insert(rows); err != nil {
				return err
			}
		}

		for _, s := range seedServices {
			rec := s.ServiceRecord
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&rec)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			inserted++
			docs := make([]models.ServiceDocument, 0, len(s.docs))
			for _, d := range s.docs {
				docs = append(docs, models.ServiceDocument{ServiceID: rec.ID, DocName: d})
			}
			if err := insert(&docs); err != nil {
				return err
			}
		}

		for _, d := range seedDepartments {
			rec := d.DepartmentRecord
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&rec)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			inserted++
			staff := make([]models.DepartmentStaff, 0, len(d.staff))
			for _, name := range d.staff {
				staff = append(staff, models.DepartmentStaff{DepartmentID: rec.ID, Name: name})
			}
			acts := make([]models.DepartmentAct, 0, len(d.acts))
			for _, name := range d.acts {
				acts = append(acts, models.DepartmentAct{DepartmentID: rec.ID, ActName: name})
			}
			if err := insert(&staff); err != nil {
				return err
			}
			if err := insert(&acts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return inserted, nil
}

// cloned copies s so Create can write generated keys without touching the
// package-level seed rows.
func cloned[T any](s []T) *[]T {
	c := slices.Clone(s)
	return &c
}
