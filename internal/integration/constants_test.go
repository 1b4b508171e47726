package integration_test

const (
	// Catalog fixtures
	TestRoomId       = 1
	TestEventRoomId  = 2
	TestMovieId      = 1
	TestOldMovieId   = 2
	TestMovieTitle   = "Test Movie"
	TestRoomName     = "Room 1"
	TestMovieMinutes = 120

	// Customer fixtures
	TestRegularCustomerId = 1
	TestStudentCustomerId = 2
	TestSeniorCustomerId  = 3
	TestTeacherCustomerId = 4

	// Session fixtures
	TestSessionId    = 1
	TestSessionStart = "2030-06-04T18:00:00Z"
	TestSessionEnd   = "2030-06-04T20:00:00Z"
)
