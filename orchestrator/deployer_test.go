package orchestrator_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/nx-serverless/sls-deploy/orchestrator"
	"github.com/nx-serverless/sls-deploy/orchestrator/fakes"
)

var _ = Describe("Deployer", func() {
	var (
		d          *orchestrator.Deployer
		logger     *fakes.FakeLogger
		runner     *fakes.FakeCommandRunner
		fileSystem *fakes.FakeFileSystem
		workspace  *fakes.FakeWorkspace
		config     orchestrator.DeployerConfig
		options    orchestrator.Options
		result     orchestrator.Result

		projectName = "api"
	)

	messagesOf := func(count func() int, argsForCall func(int) (string, string, []interface{})) []string {
		var messages []string
		for i := 0; i < count(); i++ {
			_, msg, args := argsForCall(i)
			messages = append(messages, fmt.Sprintf(msg, args...))
		}
		return messages
	}

	infoMessages := func() []string {
		return messagesOf(logger.InfoCallCount, logger.InfoArgsForCall)
	}

	errorMessages := func() []string {
		return messagesOf(logger.ErrorCallCount, logger.ErrorArgsForCall)
	}

	BeforeEach(func() {
		logger = new(fakes.FakeLogger)
		runner = new(fakes.FakeCommandRunner)
		fileSystem = new(fakes.FakeFileSystem)
		workspace = new(fakes.FakeWorkspace)
		config = orchestrator.DeployerConfig{}
		options = orchestrator.Options{Stage: "prod"}

		workspace.BuildOptionReturns(true, nil)
		fileSystem.ReadFileReturns([]byte("service: api-service\n"), nil)
	})

	JustBeforeEach(func() {
		d = orchestrator.NewDeployer(logger, runner, fileSystem, config)
		result = d.Deploy(options, orchestrator.ExecutorContext{
			ProjectName: projectName,
			Workspace:   workspace,
		})
	})

	Context("when every step succeeds", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(0, orchestrator.CommandOutput{Stdout: "added 12 packages"}, nil)
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{Stdout: "Service deployed to stack api-prod"}, nil)
		})

		It("succeeds", func() {
			Expect(result).To(Equal(orchestrator.Result{Success: true}))
		})

		It("checks the generatePackageJson build option of the project", func() {
			Expect(workspace.BuildOptionCallCount()).To(Equal(1))
			actualProject, actualOption := workspace.BuildOptionArgsForCall(0)
			Expect(actualProject).To(Equal("api"))
			Expect(actualOption).To(Equal("generatePackageJson"))
		})

		It("installs dependencies in the build output directory", func() {
			Expect(runner.RunCallCount()).To(Equal(2))
			dir, command := runner.RunArgsForCall(0)
			Expect(dir).To(Equal("dist/apps/api"))
			Expect(command).To(Equal([]string{"npm", "install"}))
		})

		It("copies the descriptor into the build output directory", func() {
			Expect(fileSystem.CopyFileCallCount()).To(Equal(1))
			src, dst := fileSystem.CopyFileArgsForCall(0)
			Expect(src).To(Equal("apps/api/serverless.yml"))
			Expect(dst).To(Equal("dist/apps/api/serverless.yml"))
		})

		It("deploys from the build output directory with the stage flag", func() {
			dir, command := runner.RunArgsForCall(1)
			Expect(dir).To(Equal("dist/apps/api"))
			Expect(command).To(Equal([]string{"sls", "deploy", "--stage", "prod"}))
		})

		It("runs the steps in order", func() {
			Expect(infoMessages()).To(Equal([]string{
				`Executing "sls" (api)...`,
				"Installing dependencies",
				"Copying serverless.yml",
				`Deploying "api" using Serverless (stage: prod)`,
				"Service deployed to stack api-prod",
			}))
		})

		It("logs no errors", func() {
			Expect(logger.ErrorCallCount()).To(Equal(0))
		})

		It("logs the service name from the descriptor at debug", func() {
			Expect(messagesOf(logger.DebugCallCount, logger.DebugArgsForCall)).To(ContainElement("Descriptor declares service api-service"))
		})

		Context("and no stage is given", func() {
			BeforeEach(func() {
				options = orchestrator.Options{}
			})

			It("deploys without a stage flag", func() {
				_, command := runner.RunArgsForCall(1)
				Expect(command).To(Equal([]string{"sls", "deploy"}))
			})

			It("logs that the stage is not specified", func() {
				Expect(infoMessages()).To(ContainElement(`Deploying "api" using Serverless (not specified)`))
			})
		})

		Context("and custom commands and directories are configured", func() {
			BeforeEach(func() {
				config = orchestrator.DeployerConfig{
					RootDir:        "/workspace",
					DistDir:        "/workspace/out",
					InstallCommand: []string{"yarn", "install", "--production"},
					DeployCommand:  []string{"npx", "serverless", "deploy"},
				}
			})

			It("uses them", func() {
				dir, command := runner.RunArgsForCall(0)
				Expect(dir).To(Equal("/workspace/out/apps/api"))
				Expect(command).To(Equal([]string{"yarn", "install", "--production"}))

				src, dst := fileSystem.CopyFileArgsForCall(0)
				Expect(src).To(Equal("/workspace/apps/api/serverless.yml"))
				Expect(dst).To(Equal("/workspace/out/apps/api/serverless.yml"))

				_, command = runner.RunArgsForCall(1)
				Expect(command).To(Equal([]string{"npx", "serverless", "deploy", "--stage", "prod"}))
			})
		})
	})

	Context("when the deploy reports no changes", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{
				Stderr: "Service Information\nNo changes to deploy. Deployment skipped.",
			}, nil)
		})

		It("succeeds", func() {
			Expect(result.Success).To(BeTrue())
		})

		It("logs the skip at info and not as an error", func() {
			Expect(infoMessages()).To(ContainElement("No changes. Skipping deploy."))
			Expect(logger.ErrorCallCount()).To(Equal(0))
		})
	})

	Context("when generatePackageJson is not set", func() {
		BeforeEach(func() {
			workspace.BuildOptionReturns(nil, nil)
		})

		It("fails with a configuration error", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindConfiguration))
			Expect(result.Message).To(Equal(orchestrator.GeneratePackageJSONMessage))
		})

		It("does not run any command or copy any file", func() {
			Expect(runner.RunCallCount()).To(Equal(0))
			Expect(fileSystem.CopyFileCallCount()).To(Equal(0))
		})

		It("logs the error", func() {
			Expect(errorMessages()).To(ConsistOf(ContainSubstring(orchestrator.GeneratePackageJSONMessage)))
		})
	})

	Context("when generatePackageJson is false", func() {
		BeforeEach(func() {
			workspace.BuildOptionReturns(false, nil)
		})

		It("fails without side effects", func() {
			Expect(result.Success).To(BeFalse())
			Expect(runner.RunCallCount()).To(Equal(0))
			Expect(fileSystem.CopyFileCallCount()).To(Equal(0))
		})
	})

	Context("when the project cannot be found in the workspace", func() {
		BeforeEach(func() {
			workspace.BuildOptionReturns(nil, errors.New("project api not found"))
		})

		It("fails with a configuration error", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindConfiguration))
			Expect(result.Message).To(ContainSubstring("project api not found"))
			Expect(runner.RunCallCount()).To(Equal(0))
		})
	})

	Context("when the install writes to stderr", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(0, orchestrator.CommandOutput{Stderr: "npm ERR! code ERESOLVE"}, nil)
		})

		It("fails with the stderr text", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindInstall))
			Expect(result.Message).To(Equal("npm ERR! code ERESOLVE"))
		})

		It("reports the full detail with a stack trace", func() {
			Expect(result.Detail).To(ContainSubstring("npm ERR! code ERESOLVE"))
			Expect(result.Detail).To(ContainSubstring("install_dependencies_step.go"))
		})

		It("does not copy the descriptor or deploy", func() {
			Expect(fileSystem.CopyFileCallCount()).To(Equal(0))
			Expect(runner.RunCallCount()).To(Equal(1))
		})

		It("logs the error", func() {
			Expect(errorMessages()).To(ConsistOf(ContainSubstring("npm ERR! code ERESOLVE")))
		})
	})

	Context("when the install command cannot be started", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(0, orchestrator.CommandOutput{}, errors.New("executable file not found in $PATH"))
		})

		It("fails with an install error", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindInstall))
			Expect(result.Message).To(ContainSubstring("executable file not found in $PATH"))
			Expect(fileSystem.CopyFileCallCount()).To(Equal(0))
		})

		It("reports which command could not be run in the detail", func() {
			Expect(result.Detail).To(ContainSubstring("could not run 'npm install' in dist/apps/api"))
			Expect(result.Detail).To(ContainSubstring("deployer_test.go"))
		})
	})

	Context("when the descriptor cannot be copied", func() {
		BeforeEach(func() {
			fileSystem.CopyFileReturns(errors.New("open apps/api/serverless.yml: no such file or directory"))
		})

		It("fails with the descriptor message and keeps the cause", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindDescriptorCopy))
			Expect(result.Message).To(ContainSubstring(orchestrator.DescriptorNotFoundMessage))
			Expect(result.Message).To(ContainSubstring("no such file or directory"))
		})

		It("reports the cause with its stack trace in the detail", func() {
			Expect(result.Detail).To(ContainSubstring("open apps/api/serverless.yml: no such file or directory"))
			Expect(result.Detail).To(ContainSubstring("deployer_test.go"))
		})

		It("has already installed dependencies but does not deploy", func() {
			Expect(runner.RunCallCount()).To(Equal(1))
			_, command := runner.RunArgsForCall(0)
			Expect(command).To(Equal([]string{"npm", "install"}))
		})
	})

	Context("when the deploy writes an error to stderr", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{
				Stdout: "Deploying api to stage prod",
				Stderr: "Error: The security token included in the request is invalid.",
			}, nil)
		})

		It("fails with the stderr text", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindDeploy))
			Expect(result.Message).To(Equal("Error: The security token included in the request is invalid."))
		})

		It("still logs the deploy stdout", func() {
			Expect(infoMessages()).To(ContainElement("Deploying api to stage prod"))
		})
	})

	Context("when the deploy prints output ending in newlines", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{Stdout: "Service Information\nservice: api\n\n"}, nil)
		})

		It("logs it without the trailing newlines", func() {
			Expect(infoMessages()).To(ContainElement("Service Information\nservice: api"))
		})
	})

	Context("when the deploy prints nothing", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{Stdout: "\n"}, nil)
		})

		It("does not log an empty line", func() {
			Expect(infoMessages()).To(Equal([]string{
				`Executing "sls" (api)...`,
				"Installing dependencies",
				"Copying serverless.yml",
				`Deploying "api" using Serverless (stage: prod)`,
			}))
		})
	})

	Context("when a command exits non-zero with an empty stderr", func() {
		BeforeEach(func() {
			runner.RunReturnsOnCall(1, orchestrator.CommandOutput{ExitCode: 1}, nil)
		})

		It("succeeds, because only stderr is inspected", func() {
			Expect(result.Success).To(BeTrue())
		})

		Context("and strict exit codes are enabled", func() {
			BeforeEach(func() {
				config.StrictExitCode = true
			})

			It("fails with a deploy error", func() {
				Expect(result.Success).To(BeFalse())
				Expect(result.Kind).To(Equal(orchestrator.KindDeploy))
				Expect(result.Message).To(Equal("'sls deploy --stage prod' exited with code 1"))
			})
		})
	})

	Context("when looking up the workspace panics", func() {
		BeforeEach(func() {
			workspace.BuildOptionStub = func(string, string) (interface{}, error) {
				panic("corrupt workspace")
			}
		})

		It("reports a failure instead of panicking", func() {
			Expect(result.Success).To(BeFalse())
			Expect(result.Kind).To(Equal(orchestrator.KindUnknown))
			Expect(result.Message).To(ContainSubstring("corrupt workspace"))
			Expect(result.Detail).To(ContainSubstring("deployer.go"))
			Expect(runner.RunCallCount()).To(Equal(0))
		})
	})

	Context("when called twice", func() {
		It("does not carry state between invocations", func() {
			runner.RunReturnsOnCall(2, orchestrator.CommandOutput{Stderr: "npm ERR! network"}, nil)

			second := d.Deploy(orchestrator.Options{}, orchestrator.ExecutorContext{
				ProjectName: "worker",
				Workspace:   workspace,
			})

			Expect(result.Success).To(BeTrue())
			Expect(second.Success).To(BeFalse())
			dir, _ := runner.RunArgsForCall(2)
			Expect(dir).To(Equal("dist/apps/worker"))
		})
	})
})
