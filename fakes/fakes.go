package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_user_db.go ../db UserDB
//counterfeiter:generate -o ./fake_course_db.go ../db CourseDB
//counterfeiter:generate -o ./fake_quiz_db.go ../db QuizDB
//counterfeiter:generate -o ./fake_progress_db.go ../db ProgressDB
//counterfeiter:generate -o ./fake_ai_client.go ../aiclient AIClient
//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_httpstatus_collector.go ../healthendpoint HTTPStatusCollector
//counterfeiter:generate -o ./fake_ratelimit_collector.go ../healthendpoint RateLimitCollector
