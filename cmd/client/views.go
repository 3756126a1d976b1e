package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ats-client/internal/access"
	"ats-client/internal/common/errors"
	"ats-client/internal/interview"
)

func (s *shell) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (s *shell) renderLogin(ctx context.Context) (string, bool) {
	fmt.Println("\n=== Sign in ===")
	email, ok := s.readLine("Email: ")
	if !ok {
		return "", true
	}
	password, ok := s.readLine("Password: ")
	if !ok {
		return "", true
	}

	if err := s.sessions.Login(ctx, email, password); err != nil {
		ce := errors.Normalize(err)
		fmt.Printf("Login failed: %s\n", ce.Details)
		return access.LoginPath, false
	}

	return access.DashboardPath, false
}

func (s *shell) renderCandidateDashboard(ctx context.Context) (string, bool) {
	stats, err := s.api.CandidateStats(ctx)
	if err != nil {
		fmt.Printf("Could not load dashboard: %s\n", errors.Normalize(err).Message)
		return s.promptMenu()
	}

	fmt.Println("\n=== Candidate Dashboard ===")
	fmt.Printf("  Applications: %d  (pending %d, interviewing %d, completed %d)\n",
		stats.TotalApplications, stats.Pending, stats.Interviewing, stats.Completed)
	return s.promptMenu()
}

func (s *shell) renderBrowseJobs(ctx context.Context) (string, bool) {
	jobs, err := s.api.AvailableJobs(ctx)
	if err != nil {
		fmt.Printf("Could not load jobs: %s\n", errors.Normalize(err).Message)
		return s.promptMenu()
	}

	// The applied set is rebuilt from the server-confirmed application
	// list, never tracked optimistically after an apply.
	applied := make(map[int]bool)
	if apps, err := s.api.MyApplications(ctx); err == nil {
		for _, app := range apps {
			applied[app.JobID] = true
		}
	}

	fmt.Println("\n=== Browse Jobs ===")
	if len(jobs) == 0 {
		fmt.Println("  No jobs available at the moment")
		return s.promptMenu()
	}
	for _, job := range jobs {
		marker := " "
		if applied[job.ID] {
			marker = "*"
		}
		fmt.Printf("  [%d]%s %s - %s\n", job.ID, marker, job.Title, job.Description)
	}
	fmt.Println("  (* = already applied)")

	choice, ok := s.readLine("Job id to apply, or Enter to go back: ")
	if !ok {
		return "", true
	}
	if choice == "" {
		return access.DashboardPath, false
	}

	jobID, err := strconv.Atoi(choice)
	if err != nil {
		return "/dashboard/browse-jobs", false
	}

	if _, err := s.api.Apply(ctx, jobID); err != nil {
		fmt.Printf("Could not apply: %s\n", errors.Normalize(err).Details)
	} else {
		fmt.Println("Application submitted. Upload your resume under My Applications to start the interview.")
	}
	return "/dashboard/browse-jobs", false
}

func (s *shell) renderMyApplications(ctx context.Context) (string, bool) {
	apps, err := s.api.MyApplications(ctx)
	if err != nil {
		fmt.Printf("Could not load applications: %s\n", errors.Normalize(err).Message)
		return s.promptMenu()
	}

	fmt.Println("\n=== My Applications ===")
	if len(apps) == 0 {
		fmt.Println("  No applications yet")
		return s.promptMenu()
	}
	for _, app := range apps {
		line := fmt.Sprintf("  [%d] %s - %s", app.ApplicationID, app.JobTitle, app.Status)
		if app.HasInterview && app.InterviewID != nil {
			line += fmt.Sprintf(" (interview %d", *app.InterviewID)
			if app.InterviewStatus != nil {
				line += ", " + string(*app.InterviewStatus)
			}
			line += ")"
		}
		fmt.Println(line)
	}

	fmt.Println("\n  i <interview id> - open interview")
	fmt.Println("  u <application id> <file> - upload resume")
	choice, ok := s.readLine("Choice, or Enter to go back: ")
	if !ok {
		return "", true
	}

	fields := strings.Fields(choice)
	switch {
	case len(fields) == 2 && fields[0] == "i":
		return "/dashboard/interview/" + fields[1], false
	case len(fields) == 3 && fields[0] == "u":
		s.uploadResume(ctx, fields[1], fields[2])
		return "/dashboard/my-applications", false
	default:
		return access.DashboardPath, false
	}
}

func (s *shell) uploadResume(ctx context.Context, appIDArg, filePath string) {
	appID, err := strconv.Atoi(appIDArg)
	if err != nil {
		fmt.Println("Invalid application id")
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Printf("Could not open %s: %v\n", filePath, err)
		return
	}
	defer file.Close()

	resp, err := s.api.UploadResume(ctx, appID, filepath.Base(filePath), file)
	if err != nil {
		fmt.Printf("Upload failed: %s\n", errors.Normalize(err).Details)
		return
	}
	fmt.Printf("Resume uploaded. Your interview is ready: interview %d\n", resp.InterviewID)
}

// renderInterview runs the question/answer loop for one interview. The
// controller owns all progression decisions; the view only renders
// snapshots and forwards typed answers.
func (s *shell) renderInterview(ctx context.Context, param string) (string, bool) {
	interviewID, err := strconv.Atoi(param)
	if err != nil {
		fmt.Println("Invalid interview id")
		return "/dashboard/my-applications", false
	}

	guard := interview.NewProgressGuard(s.cache, time.Duration(s.cfg.Cache.TTLHours)*time.Hour, s.log)
	ctrl := interview.NewController(s.api, guard, s.log, interviewID)
	defer ctrl.Teardown()

	if err := ctrl.Load(ctx); err != nil {
		ce := errors.Normalize(err)
		fmt.Printf("Could not load interview: %s\n", ce.Message)
		if ce.Retryable {
			fmt.Println("You can try again from My Applications.")
		}
		return "/dashboard/my-applications", false
	}

	for {
		snap := ctrl.Snapshot()

		switch snap.Phase {
		case interview.PhaseCompleted:
			fmt.Println("\nInterview completed! Thank you for your time.")
			fmt.Println("Your responses have been recorded and will be evaluated.")
			return "/dashboard/my-applications", false

		case interview.PhaseError:
			fmt.Printf("\nInterview unavailable: %s\n", snap.Err.Message)
			return "/dashboard/my-applications", false

		case interview.PhaseActive:
			s.renderInterviewSnapshot(snap)

			answer, ok := s.readLine("Your answer (empty line to save & exit): ")
			if !ok {
				return "", true
			}
			if strings.TrimSpace(answer) == "" {
				// Progress lives on the server; leaving mid-interview
				// is always safe.
				return "/dashboard/my-applications", false
			}

			if err := ctrl.SubmitAnswer(ctx, answer); err != nil {
				ce := errors.Normalize(err)
				fmt.Printf("Submission failed: %s\n", ce.Message)
				if ce.Retryable && ctrl.Snapshot().Draft != "" {
					fmt.Println("Your answer was kept; press Enter on the retry prompt to resend it.")
					if retry, ok := s.readLine("Retry now? [Y/n]: "); ok && (retry == "" || strings.EqualFold(retry, "y")) {
						if err := ctrl.SubmitAnswer(ctx, ctrl.Snapshot().Draft); err != nil {
							fmt.Printf("Retry failed: %s\n", errors.Normalize(err).Message)
						}
					}
				}
				ctrl.ClearError()
			}

		default:
			// Loading or Submitting with no prompt to show; resolve by
			// reloading server state.
			if err := ctrl.Load(ctx); err != nil {
				fmt.Printf("Could not load interview: %s\n", errors.Normalize(err).Message)
				return "/dashboard/my-applications", false
			}
		}
	}
}

func (s *shell) renderInterviewSnapshot(snap interview.Snapshot) {
	fmt.Printf("\n=== AI Interview - question %d of %d (%.0f%% complete) ===\n",
		snap.QuestionNumber, snap.TotalQuestions, snap.Progress)

	if len(snap.Answered) > 0 {
		fmt.Println("Previous answers:")
		for i, prev := range snap.Answered {
			label := prev.QuestionText
			if label == "" {
				label = "(question no longer available)"
			}
			fmt.Printf("  Q%d: %s\n      %s\n", i+1, label, prev.Answer)
		}
		fmt.Println()
	}

	if snap.Question != nil {
		fmt.Printf("[%s] %s\n", snap.Question.Type, snap.Question.Text)
	}
	if snap.Draft != "" {
		fmt.Printf("(unsent draft: %s)\n", snap.Draft)
	}
}
