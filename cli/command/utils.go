package command

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli"

	"github.com/nx-serverless/sls-deploy/executor"
)

func processResults(results []executor.ProjectResult) error {
	failures := executor.Failures(results)
	if len(failures) == 0 {
		return nil
	}

	message := summarize(results, failures)

	errorLogPath := errorLogFileName(time.Now())
	if err := writeErrorLog(errorLogPath, errorLogContents(message, failures)); err != nil {
		message = message + "\n" + fmt.Sprintf(errorLogWriteFailedNotice, err)
	} else {
		message = message + "\n" + fmt.Sprintf(errorLogNotice, errorLogPath)
	}

	exitCode := executor.ExitCode(results)
	if exitCode == 0 {
		exitCode = 1
	}

	return cli.NewExitError(ansi.Color(message, "red"), exitCode)
}

func summarize(results, failures []executor.ProjectResult) string {
	lines := []string{fmt.Sprintf(deployFailedSummary, len(failures), len(results), plural(len(results)))}
	for _, failure := range failures {
		lines = append(lines, fmt.Sprintf("Project '%s' (%s error): %s",
			failure.Project,
			failure.Result.Kind,
			strings.TrimSpace(failure.Result.Message),
		))
	}
	return strings.Join(lines, "\n")
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// errorLogContents follows the summary with each failure's full detail,
// stack traces included.
func errorLogContents(summary string, failures []executor.ProjectResult) string {
	sections := []string{summary}
	for _, failure := range failures {
		detail := failure.Result.Detail
		if detail == "" {
			detail = failure.Result.Message
		}
		sections = append(sections, fmt.Sprintf("Project '%s':\n%s", failure.Project, strings.TrimRight(detail, "\n")))
	}
	return strings.Join(sections, "\n\n")
}

func errorLogFileName(now time.Time) string {
	return fmt.Sprintf("sls-deploy-%s.err.log", now.UTC().Format(time.RFC3339))
}

func writeErrorLog(path, contents string) error {
	return ioutil.WriteFile(path, []byte(contents+"\n"), 0644)
}

func redCliError(err error, exitCode int) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), exitCode)
}
