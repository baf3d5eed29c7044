package gst

// stateNames maps the 2-digit GST state codes to state/UT names, including
// the special codes used for other territories and centre jurisdiction.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"28": "Andhra Pradesh (old)",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"96": "Foreign Country",
	"97": "Other Territory",
	"99": "Centre Jurisdiction",
}

// StateName returns the state/UT name for a 2-digit GST state code.
// The second return value is false for unknown codes.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// IsKnownStateCode reports whether code is in the GST state code table.
func IsKnownStateCode(code string) bool {
	_, ok := stateNames[code]
	return ok
}
