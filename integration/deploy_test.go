package integration

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const workspaceFile = `{
  "projects": {
    "api": {
      "targets": {
        "build": {
          "options": { "outputPath": "dist/apps/api", "generatePackageJson": true }
        }
      }
    },
    "worker": {
      "targets": {
        "build": {
          "options": { "outputPath": "dist/apps/worker" }
        }
      }
    }
  }
}`

var _ = Describe("deploy", func() {
	var (
		workspace Workspace
		session   *gexec.Session
		extraEnv  []string
		params    []string
	)

	BeforeEach(func() {
		workspace = NewWorkspace()
		workspace.WriteFile("workspace.json", workspaceFile)
		workspace.WriteFile("apps/api/serverless.yml", "service: api\nprovider:\n  name: aws\n")
		workspace.Mkdir("dist/apps/api")
		workspace.Mkdir("dist/apps/worker")

		extraEnv = nil
		params = []string{"deploy", "--project", "api", "--stage", "prod"}
	})

	AfterEach(func() {
		workspace.Destroy()
	})

	JustBeforeEach(func() {
		session = binary.Run(workspace.Root, workspace.Env(extraEnv...), params...)
	})

	Context("when every step succeeds", func() {
		BeforeEach(func() {
			extraEnv = []string{"FAKE_SLS_STDOUT=Service deployed to stack api-prod"}
		})

		It("exits zero", func() {
			Expect(session.ExitCode()).To(Equal(0))
		})

		It("installs dependencies in the build output directory", func() {
			Expect(workspace.Recorded("npm", "pwd")).To(Equal(workspace.Path("dist", "apps", "api") + "\n"))
			Expect(workspace.Recorded("npm", "args")).To(Equal("install\n"))
		})

		It("copies the descriptor", func() {
			Expect(workspace.Path("dist", "apps", "api", "serverless.yml")).To(BeAnExistingFile())
		})

		It("deploys with the stage", func() {
			Expect(workspace.Recorded("sls", "pwd")).To(Equal(workspace.Path("dist", "apps", "api") + "\n"))
			Expect(workspace.Recorded("sls", "args")).To(Equal("deploy --stage prod\n"))
		})

		It("logs each step", func() {
			Expect(session.Out).To(gbytes.Say(`Executing "sls" \(api\)\.\.\.`))
			Expect(session.Out).To(gbytes.Say("Installing dependencies"))
			Expect(session.Out).To(gbytes.Say("Copying serverless.yml"))
			Expect(session.Out).To(gbytes.Say(`Deploying "api" using Serverless \(stage: prod\)`))
			Expect(session.Out).To(gbytes.Say("Service deployed to stack api-prod"))
		})
	})

	Context("when no stage is given", func() {
		BeforeEach(func() {
			params = []string{"deploy", "--project", "api"}
		})

		It("deploys without a stage flag", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(workspace.Recorded("sls", "args")).To(Equal("deploy\n"))
			Expect(session.Out).To(gbytes.Say(`\(not specified\)`))
		})
	})

	Context("when there are no changes to deploy", func() {
		BeforeEach(func() {
			extraEnv = []string{"FAKE_SLS_STDERR=No changes to deploy. Deployment skipped."}
		})

		It("exits zero and reports the skip", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("No changes. Skipping deploy."))
		})
	})

	Context("when the project does not generate a package.json", func() {
		BeforeEach(func() {
			params = []string{"deploy", "--project", "worker"}
		})

		It("fails with a configuration exit code without running anything", func() {
			Expect(session.ExitCode()).To(Equal(1 << 2))
			Expect(session.Err).To(gbytes.Say("generatePackageJson"))
			Expect(workspace.Recorded("npm", "args")).To(BeEmpty())
			Expect(workspace.Recorded("sls", "args")).To(BeEmpty())
		})

		It("writes an error log", func() {
			matches, err := filepath.Glob(workspace.Path("sls-deploy-*.err.log"))
			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(HaveLen(1))
		})
	})

	Context("when the install writes to stderr", func() {
		BeforeEach(func() {
			extraEnv = []string{"FAKE_NPM_STDERR=npm ERR! code E404"}
		})

		It("fails with an install exit code and does not deploy", func() {
			Expect(session.ExitCode()).To(Equal(1 << 3))
			Expect(session.Err).To(gbytes.Say("npm ERR! code E404"))
			Expect(workspace.Recorded("sls", "args")).To(BeEmpty())
		})
	})

	Context("when the descriptor is missing", func() {
		BeforeEach(func() {
			workspace.WriteFile("workspace.json", `{"projects": {"billing": {"targets": {"build": {"options": {"generatePackageJson": true}}}}}}`)
			workspace.Mkdir("dist/apps/billing")
			params = []string{"deploy", "--project", "billing"}
		})

		It("fails with a descriptor exit code after installing", func() {
			Expect(session.ExitCode()).To(Equal(1 << 4))
			Expect(session.Err).To(gbytes.Say("could not find serverless.yml in root directory"))
			Expect(workspace.Recorded("npm", "args")).To(Equal("install\n"))
			Expect(workspace.Recorded("sls", "args")).To(BeEmpty())
		})
	})

	Context("when the deploy writes an error to stderr", func() {
		BeforeEach(func() {
			extraEnv = []string{"FAKE_SLS_STDERR=ServerlessError: AWS provider credentials not found"}
		})

		It("fails with a deploy exit code", func() {
			Expect(session.ExitCode()).To(Equal(1 << 5))
			Expect(session.Err).To(gbytes.Say("AWS provider credentials not found"))
		})
	})

	Context("when several projects are given", func() {
		BeforeEach(func() {
			params = []string{"deploy", "--project", "api", "--project", "worker"}
		})

		It("deploys each and reports the failures", func() {
			Expect(session.ExitCode()).To(Equal(1 << 2))
			Expect(session.Err).To(gbytes.Say("1 of 2 projects failed to deploy"))
			Expect(session.Err).To(gbytes.Say("Project 'worker' \\(configuration error\\)"))
			Expect(workspace.Recorded("sls", "args")).To(Equal("deploy\n"))
		})
	})

	Context("when custom commands are configured", func() {
		BeforeEach(func() {
			params = []string{"deploy", "--project", "api", "--stage", "dev",
				"--install-command", "npm ci --omit=dev",
				"--deploy-command", "sls deploy --verbose",
			}
		})

		It("uses them", func() {
			Expect(session.ExitCode()).To(Equal(0))
			Expect(workspace.Recorded("npm", "args")).To(Equal("ci --omit=dev\n"))
			Expect(workspace.Recorded("sls", "args")).To(Equal("deploy --verbose --stage dev\n"))
		})
	})

	Context("when --project is missing", func() {
		BeforeEach(func() {
			params = []string{"deploy"}
		})

		It("fails and explains the flag is required", func() {
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("--project flag is required."))
		})
	})

	Context("when the workspace file is missing", func() {
		BeforeEach(func() {
			params = []string{"deploy", "--project", "api", "--workspace", "nx.json"}
		})

		It("fails with a configuration exit code", func() {
			Expect(session.ExitCode()).To(Equal(1 << 2))
			Expect(session.Err).To(gbytes.Say("error reading workspace file"))
		})
	})
})

var _ = Describe("version", func() {
	It("prints the version", func() {
		session := binary.Run(".", []string{}, "version")
		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say(version))
	})
})
