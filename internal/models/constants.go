package models

// Column names of the NYC Motor Vehicle Collisions CSV export.
const (
	ColCrashDate           = "CRASH DATE"
	ColCrashTime           = "CRASH TIME"
	ColBorough             = "BOROUGH"
	ColZipCode             = "ZIP CODE"
	ColLatitude            = "LATITUDE"
	ColLongitude           = "LONGITUDE"
	ColOnStreetName        = "ON STREET NAME"
	ColCrossStreetName     = "CROSS STREET NAME"
	ColPersonsInjured      = "NUMBER OF PERSONS INJURED"
	ColPersonsKilled       = "NUMBER OF PERSONS KILLED"
	ColPedestriansInjured  = "NUMBER OF PEDESTRIANS INJURED"
	ColPedestriansKilled   = "NUMBER OF PEDESTRIANS KILLED"
	ColCyclistsInjured     = "NUMBER OF CYCLIST INJURED"
	ColCyclistsKilled      = "NUMBER OF CYCLIST KILLED"
	ColMotoristsInjured    = "NUMBER OF MOTORIST INJURED"
	ColMotoristsKilled     = "NUMBER OF MOTORIST KILLED"
	ColContributingFactor1 = "CONTRIBUTING FACTOR VEHICLE 1"
	ColContributingFactor2 = "CONTRIBUTING FACTOR VEHICLE 2"
	ColVehicleType1        = "VEHICLE TYPE CODE 1"
	ColVehicleType2        = "VEHICLE TYPE CODE 2"
)

// CrashDateLayout matches the dataset's "MM/DD/YYYY" crash date format.
const CrashDateLayout = "01/02/2006"

// Boroughs lists NYC's five administrative districts as they appear in the
// BOROUGH column.
var Boroughs = []string{"BROOKLYN", "QUEENS", "MANHATTAN", "BRONX", "STATEN ISLAND"}

// DefaultContributingFactors are common factor codes in the dataset, used by
// the synthetic data generator.
var DefaultContributingFactors = []string{
	"Driver Inattention/Distraction",
	"Failure to Yield Right-of-Way",
	"Following Too Closely",
	"Backing Unsafely",
	"Passing or Lane Usage Improper",
	"Passing Too Closely",
	"Turning Improperly",
	"Unsafe Lane Changing",
	"Traffic Control Disregarded",
	"Driver Inexperience",
	"Unspecified",
}

// DefaultVehicleTypes are common vehicle type codes in the dataset, used by
// the synthetic data generator.
var DefaultVehicleTypes = []string{
	"Sedan",
	"Station Wagon/Sport Utility Vehicle",
	"Taxi",
	"Pick-up Truck",
	"Box Truck",
	"Bus",
	"Bike",
	"Motorcycle",
	"Ambulance",
	"E-Scooter",
}
