package helpdesk

// User facing copy. Routing never inspects these strings.
const (
	msgUsage               = "Please ask something like 'HOD of CSE', 'route 2', 'driver route 1', or 'sessional I sem 1'."
	msgCannotFind          = "Cannot find information related to that query."
	msgDepartmentUndefined = "I couldn't detect the department. Try 'HOD of CSE' or 'HOD of Mechanical'."
	msgHODUnavailable      = "HOD details for '%s' are not available."
	msgMultipleDepartments = "'%s' matches more than one department:"
	msgRouteNotFound       = "No route found for '%s'."
	msgNoRoutes            = "No transport routes are listed."
	msgDriverNotFound      = "No driver found for route '%s'."
	msgDriverPrompt        = "Please specify the route or origin (e.g., 'driver route 1' or 'driver Patancheru')."
	msgNoDrivers           = "No drivers are listed."
	msgNoAcademicQuery     = "No academic query detected. Try 'sessional I sem 1', 'end exams sem 4', or 'academic calendar 2nd year'."
	msgNoEventsSemester    = "No academic events found for semester %s with that filter."
	msgNoEventsYear        = "No academic events found for year %s with that filter."
	msgNoEvents            = "No academic events found. Try 'sessional I sem 1', 'end exams sem 4', or 'academic calendar 2nd year'."
	msgNoAbout             = "No about info available."
	msgNoFacilities        = "No facilities listed."
	notListed              = "Not listed"
)
